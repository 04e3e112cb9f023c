package session

import (
	"time"

	"NutriAssist/internal/chat"
	"NutriAssist/internal/locales"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxSessions    = 1000
	DefaultTTL            = 2 * time.Hour
	DefaultMessagesPerMin = 30
	messageBurst          = 5
)

// Options bound the registry.
type Options struct {
	MaxSessions int
	TTL         time.Duration

	// MessagesPerMin throttles each session. Negative disables throttling.
	MessagesPerMin int
}

// Manager is a bounded registry of live sessions. Least recently used
// sessions are evicted when full and idle ones expire after TTL.
type Manager struct {
	cache          *expirable.LRU[string, *Session]
	newController  func() *chat.Controller
	messagesPerMin int
}

// NewManager builds a registry; newController is called once per session.
func NewManager(opts Options, newController func() *chat.Controller) *Manager {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MessagesPerMin == 0 {
		opts.MessagesPerMin = DefaultMessagesPerMin
	}

	onEvict := func(id string, s *Session) {
		s.Close()
		log.Info().Str("session_id", id).Msg("Session closed")
	}
	return &Manager{
		cache:          expirable.NewLRU[string, *Session](opts.MaxSessions, onEvict, opts.TTL),
		newController:  newController,
		messagesPerMin: opts.MessagesPerMin,
	}
}

// Create registers a fresh session.
func (m *Manager) Create(loc locales.Locale) *Session {
	s := newSession(uuid.NewString(), loc, m.newController(), m.newLimiter())
	m.cache.Add(s.ID, s)
	log.Info().Str("session_id", s.ID).Str("locale", loc.String()).Msg("Session created")
	return s
}

// Get returns a live session and pushes its expiry forward.
func (m *Manager) Get(id string) (*Session, bool) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, false
	}
	m.cache.Add(id, s)

	// A concurrent Delete or expiry may have closed s between Get and Add.
	if s.ctx.Err() != nil {
		m.cache.Remove(id)
		return nil, false
	}
	return s, true
}

// Delete tears a session down. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	return m.cache.Remove(id)
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	return m.cache.Len()
}

// Close tears down every session.
func (m *Manager) Close() {
	m.cache.Purge()
}

func (m *Manager) newLimiter() *rate.Limiter {
	if m.messagesPerMin < 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.messagesPerMin)), messageBurst)
}

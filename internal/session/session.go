/*
Package session keeps one conversation per browser session in memory. The
registry is bounded and idle sessions expire; tearing a session down cancels
any completion still waiting on it.
*/
package session

import (
	"context"
	"sync"
	"time"

	"NutriAssist/internal/chat"
	"NutriAssist/internal/completion"
	"NutriAssist/internal/locales"
	"NutriAssist/internal/nutrition"
	"golang.org/x/time/rate"
)

// Session is one user's conversation plus what the chat window shows.
type Session struct {
	ID        string
	CreatedAt time.Time

	controller *chat.Controller
	limiter    *rate.Limiter

	// ctx is cancelled when the session is evicted or deleted.
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	locale  locales.Locale
	history []completion.Message
}

func newSession(id string, loc locales.Locale, controller *chat.Controller, limiter *rate.Limiter) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		ID:         id,
		CreatedAt:  time.Now(),
		controller: controller,
		limiter:    limiter,
		ctx:        ctx,
		cancel:     cancel,
		locale:     loc,
		history:    []completion.Message{welcome(loc)},
	}
}

func welcome(loc locales.Locale) completion.Message {
	return completion.Message{Role: completion.RoleAssistant, Content: locales.Sprintf(loc, locales.MsgWelcome)}
}

// Locale is the session's default language.
func (s *Session) Locale() locales.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale changes the default language for later requests.
func (s *Session) SetLocale(loc locales.Locale) {
	s.mu.Lock()
	s.locale = loc
	s.mu.Unlock()
}

// Allow consumes one message token from the session's limiter.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// SetProfile replaces the conversation profile and returns the seeded greeting.
// The chat window keeps its history.
func (s *Session) SetProfile(loc locales.Locale, p nutrition.Profile) string {
	return s.controller.SetProfile(loc, p)
}

// Profile returns the current profile and whether one was set.
func (s *Session) Profile() (nutrition.Profile, bool) {
	return s.controller.Profile()
}

// Send runs one chat turn and records it in the display history. The turn is
// abandoned if either ctx or the session ends first.
func (s *Session) Send(ctx context.Context, loc locales.Locale, message string) (reply string, history []completion.Message) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	reply = s.controller.Respond(ctx, loc, message)

	s.mu.Lock()
	s.history = append(s.history,
		completion.Message{Role: completion.RoleUser, Content: message},
		completion.Message{Role: completion.RoleAssistant, Content: reply},
	)
	history = cloneMessages(s.history)
	s.mu.Unlock()
	return reply, history
}

// History returns what the chat window shows.
func (s *Session) History() []completion.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMessages(s.history)
}

// ClearHistory empties the chat window. The backend transcript is untouched.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

// Transcript exposes the backend transcript for inspection.
func (s *Session) Transcript() []completion.Message {
	return s.controller.Transcript()
}

// Done is closed when the session is torn down.
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Close cancels anything still running on behalf of the session.
func (s *Session) Close() {
	s.cancel()
}

func cloneMessages(in []completion.Message) []completion.Message {
	out := make([]completion.Message, len(in))
	copy(out, in)
	return out
}

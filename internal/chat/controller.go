/*
Package chat owns one nutrition conversation: the profile it is personalized
with, the transcript sent to the completion backend, and the turn-taking
rules around topic filtering, retries and failure messages.
*/
package chat

import (
	"context"
	"errors"
	"sync"

	"NutriAssist/internal/completion"
	"NutriAssist/internal/locales"
	"NutriAssist/internal/nutrition"
	"NutriAssist/internal/retry"
	"NutriAssist/internal/topic"
	"github.com/rs/zerolog"
)

// TopicFilter gates which user messages may reach the backend.
type TopicFilter interface {
	IsNutritionRelated(text string) bool
}

// Controller is safe for concurrent use. Calls are serialized, so a
// conversation never sees two completions in flight.
type Controller struct {
	client completion.Client
	params completion.Params
	policy retry.Policy
	topics map[locales.Locale]TopicFilter

	mu         sync.Mutex
	profile    nutrition.Profile
	profiled   bool
	transcript []completion.Message
}

// Option customizes a Controller.
type Option func(*Controller)

// WithParams overrides the sampling parameters.
func WithParams(p completion.Params) Option {
	return func(c *Controller) { c.params = p }
}

// WithRetryPolicy overrides attempts and backoff. Errors are still classified
// with completion.IsRetryable unless the policy brings its own classifier.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Controller) {
		if p.Retryable == nil {
			p.Retryable = completion.IsRetryable
		}
		c.policy = p
	}
}

// WithTopicFilter sets the filter used for messages in loc.
func WithTopicFilter(loc locales.Locale, f TopicFilter) Option {
	return func(c *Controller) { c.topics[loc] = f }
}

// NewController returns an unprofiled conversation whose transcript holds
// only the base system turn.
func NewController(client completion.Client, opts ...Option) *Controller {
	policy := retry.Default()
	policy.Retryable = completion.IsRetryable

	c := &Controller{
		client: client,
		params: completion.DefaultParams(),
		policy: policy,
		topics: map[locales.Locale]TopicFilter{
			locales.English: topic.New(topic.English),
			locales.Spanish: topic.New(topic.Merge(topic.English, topic.Spanish)),
		},
		transcript: []completion.Message{{Role: completion.RoleSystem, Content: BasePrompt}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetProfile replaces the profile and re-seeds the transcript to exactly
// [system prompt with profile context, greeting + assessment]. It returns
// the seeded greeting.
func (c *Controller) SetProfile(loc locales.Locale, p nutrition.Profile) string {
	m := nutrition.Derive(p)
	greeting := locales.Sprintf(loc, locales.MsgGreeting, p.Name) + nutrition.Assess(loc, p, m)
	system := BasePrompt + ContextBlock(loc, p, m)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.profile = p
	c.profiled = true
	c.transcript = []completion.Message{
		{Role: completion.RoleSystem, Content: system},
		{Role: completion.RoleAssistant, Content: greeting},
	}
	return greeting
}

// Respond answers one user message. It never fails: off-topic messages get a
// redirect, backend failures get an apology, and only a successful reply is
// recorded as an assistant turn.
func (c *Controller) Respond(ctx context.Context, loc locales.Locale, message string) string {
	if !c.topicFilter(loc).IsNutritionRelated(message) {
		return locales.Sprintf(loc, locales.MsgRedirect)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	logger := zerolog.Ctx(ctx)
	preamble := Preamble(loc, c.profile)

	c.transcript = append(c.transcript, completion.Message{Role: completion.RoleUser, Content: message})
	turns := make([]completion.Message, len(c.transcript))
	copy(turns, c.transcript)

	var reply string
	err := c.policy.Do(ctx, func(ctx context.Context, attempt int) error {
		logger.Info().Msgf("Attempt %d: Calling completion API...", attempt)
		text, err := c.client.Complete(ctx, turns, c.params)
		if err != nil {
			return err
		}
		reply = text
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("completion failed, answering with apology")
		return apology(loc, err)
	}

	c.transcript = append(c.transcript, completion.Message{Role: completion.RoleAssistant, Content: reply})
	return preamble + reply
}

// Transcript returns a copy of the turns sent to the backend.
func (c *Controller) Transcript() []completion.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]completion.Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Profile returns the current profile and whether one was ever set.
func (c *Controller) Profile() (nutrition.Profile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.profile
	p.DietaryPreferences = append([]string(nil), c.profile.DietaryPreferences...)
	return p, c.profiled
}

func (c *Controller) topicFilter(loc locales.Locale) TopicFilter {
	if f, ok := c.topics[loc]; ok {
		return f
	}
	return c.topics[locales.Default]
}

func apology(loc locales.Locale, err error) string {
	var apiErr *completion.APIError
	switch {
	case errors.Is(err, completion.ErrRateLimited):
		return locales.Sprintf(loc, locales.MsgRateLimited)
	case errors.As(err, &apiErr):
		return locales.Sprintf(loc, locales.MsgAPIError, apiErr.Error())
	default:
		return locales.Sprintf(loc, locales.MsgUnexpected, err.Error())
	}
}

package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"NutriAssist/internal/chat"
	"NutriAssist/internal/completion"
	"NutriAssist/internal/locales"
	"NutriAssist/internal/nutrition"
	"NutriAssist/internal/session"
	"NutriAssist/internal/theme"
	"github.com/labstack/echo/v4"
)

/* ====================================================================
                   		Request / Response types
==================================================================== */

type createSessionRequest struct {
	Locale string `json:"locale"`
}

type sessionResponse struct {
	ID        string               `json:"id"`
	Locale    locales.Locale       `json:"locale"`
	CreatedAt time.Time            `json:"created_at"`
	Profile   *nutrition.Profile   `json:"profile,omitempty"`
	Metrics   *nutrition.Metrics   `json:"metrics,omitempty"`
	History   []completion.Message `json:"history"`
}

type profileRequest struct {
	nutrition.Profile
	Locale string `json:"locale"`
}

type profileResponse struct {
	Status   string            `json:"status"`
	Greeting string            `json:"greeting"`
	Metrics  nutrition.Metrics `json:"metrics"`
}

type messageRequest struct {
	Message     string `json:"message"`
	QuickAction string `json:"quick_action"`
	Locale      string `json:"locale"`
}

type messageResponse struct {
	Reply   string               `json:"reply"`
	History []completion.Message `json:"history"`
}

// socketEvent is pushed to every open socket of a session.
type socketEvent struct {
	Type     string               `json:"type"` // "reply", "profile" or "error"
	Reply    string               `json:"reply,omitempty"`
	Greeting string               `json:"greeting,omitempty"`
	Error    string               `json:"error,omitempty"`
	History  []completion.Message `json:"history,omitempty"`
}

var errEmptyMessage = errors.New("message or quick_action is required")

/* ====================================================================
                   		Metadata Handlers
==================================================================== */

func (s *Server) quickActionsHandler(c echo.Context) error {
	loc := resolveLocale(c, "", s.cfg.DefaultLocale)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"locale":  loc,
		"actions": chat.QuickActions(loc),
	})
}

// profileOptionsHandler describes what the profile form accepts.
func (s *Server) profileOptionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"locales":         locales.All(),
		"dietary_options": nutrition.DietaryOptions,
		"bounds": map[string]interface{}{
			"age":       []int{nutrition.MinAge, nutrition.MaxAge},
			"weight_kg": []float64{nutrition.MinWeightKg, nutrition.MaxWeightKg},
			"height_cm": []float64{nutrition.MinHeightCm, nutrition.MaxHeightCm},
		},
	})
}

func (s *Server) themeHandler(c echo.Context) error {
	mode := theme.ParseMode(c.QueryParam("mode"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"mode":   mode,
		"tokens": theme.Tokens(mode),
	})
}

/* ====================================================================
                   		Session Handlers
==================================================================== */

func (s *Server) createSessionHandler(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	sess := s.sessions.Create(resolveLocale(c, req.Locale, s.cfg.DefaultLocale))
	if err := s.rememberSession(c, sess.ID); err != nil {
		requestLogger(c).Warn().Err(err).Msg("createSessionHandler: could not set session cookie")
	}

	return c.JSON(http.StatusCreated, describeSession(sess))
}

func (s *Server) getSessionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, describeSession(currentSession(c)))
}

func (s *Server) deleteSessionHandler(c echo.Context) error {
	sess := currentSession(c)
	s.hub.CloseSession(sess.ID)
	s.sessions.Delete(sess.ID)
	if s.cookieSessionID(c) == sess.ID {
		if err := s.forgetSession(c); err != nil {
			requestLogger(c).Warn().Err(err).Msg("deleteSessionHandler: could not clear session cookie")
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) updateProfileHandler(c echo.Context) error {
	sess := currentSession(c)

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	profile := req.Profile.Normalized()
	if err := profile.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	loc := resolveLocale(c, req.Locale, sess.Locale())
	sess.SetLocale(loc)
	greeting := sess.SetProfile(loc, profile)
	requestLogger(c).Info().Str("name", profile.Name).Msg("Profile updated")

	s.hub.Broadcast(sess.ID, socketEvent{Type: "profile", Greeting: greeting})

	return c.JSON(http.StatusOK, profileResponse{
		Status:   locales.Sprintf(loc, locales.MsgProfileUpdated, profile.Name),
		Greeting: greeting,
		Metrics:  nutrition.Derive(profile),
	})
}

func (s *Server) postMessageHandler(c echo.Context) error {
	sess := currentSession(c)

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	loc := resolveLocale(c, req.Locale, sess.Locale())

	text, err := messageText(loc, req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if !s.allowMessage(c, sess) {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": locales.Sprintf(loc, locales.MsgTooManyTurns)})
	}

	reply, history := sess.Send(c.Request().Context(), loc, text)
	s.hub.Broadcast(sess.ID, socketEvent{Type: "reply", Reply: reply, History: history})

	return c.JSON(http.StatusOK, messageResponse{Reply: reply, History: history})
}

func (s *Server) getHistoryHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": currentSession(c).History(),
	})
}

func (s *Server) clearHistoryHandler(c echo.Context) error {
	currentSession(c).ClearHistory()
	return c.NoContent(http.StatusNoContent)
}

/* ====================================================================
                   		Helpers
==================================================================== */

// messageText turns a request into the text sent to the conversation. A
// quick action wins over a typed message.
func messageText(loc locales.Locale, req messageRequest) (string, error) {
	if req.QuickAction != "" {
		prompt, ok := chat.QuickActionPrompt(loc, req.QuickAction)
		if !ok {
			return "", errors.New("unknown quick_action " + req.QuickAction)
		}
		return prompt, nil
	}
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return "", errEmptyMessage
	}
	return text, nil
}

func describeSession(sess *session.Session) sessionResponse {
	resp := sessionResponse{
		ID:        sess.ID,
		Locale:    sess.Locale(),
		CreatedAt: sess.CreatedAt,
		History:   sess.History(),
	}
	if p, ok := sess.Profile(); ok {
		m := nutrition.Derive(p)
		resp.Profile = &p
		resp.Metrics = &m
	}
	return resp
}

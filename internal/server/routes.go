package server

import (
	"net/http"

	"NutriAssist/internal/locales"
	"NutriAssist/internal/session"
	"NutriAssist/internal/utility"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(LoggerMiddleware)

	// Public metadata routes
	e.GET("/health", s.healthHandler)
	e.GET("/quick-actions", s.quickActionsHandler)
	e.GET("/profile-options", s.profileOptionsHandler)
	e.GET("/theme", s.themeHandler)

	// Conversation routes; ":id" may be "current" to use the session cookie
	e.POST("/sessions", s.createSessionHandler)

	conv := e.Group("/sessions/:id", s.sessionMiddleware)
	conv.GET("", s.getSessionHandler)
	conv.DELETE("", s.deleteSessionHandler)
	conv.PUT("/profile", s.updateProfileHandler)
	conv.POST("/messages", s.postMessageHandler)
	conv.GET("/history", s.getHistoryHandler)
	conv.DELETE("/history", s.clearHistoryHandler)
	conv.GET("/ws", s.chatSocketHandler)

	return e
}

func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		return next(c)
	}
}

// sessionMiddleware resolves ":id" (or the cookie for "current") to a live session.
func (s *Server) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "current" {
			id = s.cookieSessionID(c)
		}
		if id == "" {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no active session"})
		}

		sess, ok := s.sessions.Get(id)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found or expired"})
		}

		c.Set("session", sess)
		logger := requestLogger(c).With().Str("session_id", sess.ID).Logger()
		c.Set("logger", &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))
		return next(c)
	}
}

func (s *Server) cookieSessionID(c echo.Context) string {
	cs, err := s.store.Get(c.Request(), cookieName)
	if err != nil {
		return ""
	}
	id, _ := cs.Values[cookieIDKey].(string)
	return id
}

func (s *Server) rememberSession(c echo.Context, id string) error {
	cs, _ := s.store.Get(c.Request(), cookieName)
	cs.Values[cookieIDKey] = id
	return cs.Save(c.Request(), c.Response())
}

func (s *Server) forgetSession(c echo.Context) error {
	cs, _ := s.store.Get(c.Request(), cookieName)
	cs.Options.MaxAge = -1
	return cs.Save(c.Request(), c.Response())
}

// allowMessage applies the per-session and per-IP message budgets.
func (s *Server) allowMessage(c echo.Context, sess *session.Session) bool {
	return s.ipLimiter.Allow(utility.GetRealIP(c)) && sess.Allow()
}

func currentSession(c echo.Context) *session.Session {
	sess, _ := c.Get("session").(*session.Session)
	return sess
}

func requestLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get("logger").(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}

// resolveLocale picks, in order: ?locale=, the body's locale, Accept-Language,
// then the session default.
func resolveLocale(c echo.Context, bodyLocale string, fallback locales.Locale) locales.Locale {
	if q := c.QueryParam("locale"); q != "" {
		return locales.Match(q)
	}
	if bodyLocale != "" {
		return locales.Match(bodyLocale)
	}
	if loc, ok := locales.FromAcceptLanguage(c.Request().Header.Get("Accept-Language")); ok {
		return loc
	}
	return fallback
}

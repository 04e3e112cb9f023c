package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"NutriAssist/internal/chat"
	"NutriAssist/internal/completion"
	"NutriAssist/internal/config"
	"NutriAssist/internal/locales"
	"NutriAssist/internal/retry"
	"NutriAssist/internal/session"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu    sync.Mutex
	reply string
	calls int
	last  []completion.Message
}

func (f *fakeClient) Complete(ctx context.Context, messages []completion.Message, params completion.Params) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = messages
	return f.reply, nil
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestServer(t *testing.T, messagesPerMin int) (*Server, http.Handler, *fakeClient) {
	t.Helper()

	client := &fakeClient{reply: "Try oatmeal with berries."}
	cfg := &config.Config{
		AppEnv:             "development",
		CompletionProvider: "openai",
		SessionSecret:      "0123456789abcdef0123456789abcdef",
		SessionTTL:         time.Hour,
		DefaultLocale:      locales.English,
		IPMessagesPerMin:   -1,
		AllowedOrigins:     []string{"*"},
	}
	manager := session.NewManager(session.Options{MessagesPerMin: messagesPerMin}, func() *chat.Controller {
		return chat.NewController(client, chat.WithRetryPolicy(retry.Policy{MaxAttempts: 1}))
	})
	t.Cleanup(manager.Close)

	srv := New(cfg, manager)
	return srv, srv.RegisterRoutes(), client
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, h http.Handler, body string) (sessionResponse, []*http.Cookie) {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/sessions", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp, rec.Result().Cookies()
}

func TestHealthHandler(t *testing.T) {
	_, h, _ := newTestServer(t, 0)
	createSession(t, h, "")

	rec := doJSON(t, h, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "online", body["status"])
	assert.EqualValues(t, 1, body["sessions"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestQuickActionsAndTheme(t *testing.T) {
	_, h, _ := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/quick-actions", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var actions struct {
		Locale  string             `json:"locale"`
		Actions []chat.QuickAction `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actions))
	assert.Equal(t, "es", actions.Locale)
	assert.Len(t, actions.Actions, 5)

	rec = doJSON(t, h, http.MethodGet, "/theme?mode=dark", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"dark"`)
	assert.Contains(t, rec.Body.String(), "#1B2A1B")
}

func TestProfileOptions(t *testing.T) {
	_, h, _ := newTestServer(t, 0)

	rec := doJSON(t, h, http.MethodGet, "/profile-options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Locales        []string             `json:"locales"`
		DietaryOptions []string             `json:"dietary_options"`
		Bounds         map[string][]float64 `json:"bounds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"en", "es"}, body.Locales)
	assert.Contains(t, body.DietaryOptions, "Gluten-Free")
	assert.Equal(t, []float64{0, 120}, body.Bounds["age"])
	assert.Equal(t, []float64{100, 250}, body.Bounds["height_cm"])
}

func TestSessionLifecycle(t *testing.T) {
	_, h, _ := newTestServer(t, 0)

	created, cookies := createSession(t, h, "")
	require.NotEmpty(t, cookies)
	require.Len(t, created.History, 1)
	assert.Equal(t, locales.MsgWelcome, created.History[0].Content)
	assert.Nil(t, created.Profile)

	// "current" resolves through the cookie
	rec := doJSON(t, h, http.MethodGet, "/sessions/current", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var current sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &current))
	assert.Equal(t, created.ID, current.ID)

	rec = doJSON(t, h, http.MethodGet, "/sessions/current", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/sessions/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/sessions/"+created.ID, "", cookies)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/sessions/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	_, h, _ := newTestServer(t, 0)
	created, _ := createSession(t, h, "")
	path := "/sessions/" + created.ID + "/profile"

	rec := doJSON(t, h, http.MethodPut, path, `{"name":"Ana","age":150}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPut, path,
		`{"name":"Ana","age":30,"weight_kg":70,"height_cm":175,"calorie_target":2500}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp profileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Profile updated for Ana", resp.Status)
	assert.True(t, strings.HasPrefix(resp.Greeting, "Hello, Ana! "))
	assert.Equal(t, 22.9, resp.Metrics.BMI)

	rec = doJSON(t, h, http.MethodGet, "/sessions/"+created.ID, "", nil)
	var got sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Ana", got.Profile.Name)
	require.NotNil(t, got.Metrics)
	assert.Equal(t, 22.9, got.Metrics.BMI)
}

func TestPostMessage(t *testing.T) {
	_, h, client := newTestServer(t, 0)
	created, _ := createSession(t, h, "")
	path := "/sessions/" + created.ID + "/messages"

	t.Run("on topic", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, path, `{"message":"What should I eat for breakfast?"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp messageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Try oatmeal with berries.", resp.Reply)
		require.Len(t, resp.History, 3)
		assert.Equal(t, completion.RoleUser, resp.History[1].Role)
		assert.Equal(t, 1, client.callCount())
	})

	t.Run("off topic never reaches the backend", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, path, `{"message":"tell me a joke"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp messageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, locales.MsgRedirect, resp.Reply)
		assert.Equal(t, 1, client.callCount())
	})

	t.Run("quick action", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, path, `{"quick_action":"weekly_menu"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		client.mu.Lock()
		last := client.last[len(client.last)-1]
		client.mu.Unlock()
		assert.Equal(t, locales.MsgActionMenuPrompt, last.Content)
	})

	t.Run("bad requests", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, path, `{"message":"   "}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, h, http.MethodPost, path, `{"quick_action":"dance"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostMessageThrottled(t *testing.T) {
	_, h, client := newTestServer(t, 1)
	created, _ := createSession(t, h, "")
	path := "/sessions/" + created.ID + "/messages"

	var last *httptest.ResponseRecorder
	for i := 0; i < 10; i++ {
		last = doJSON(t, h, http.MethodPost, path, `{"message":"Is rice healthy?"}`, nil)
		if last.Code == http.StatusTooManyRequests {
			break
		}
	}
	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "too quickly")
	assert.Less(t, client.callCount(), 10)
}

func TestHistory(t *testing.T) {
	_, h, _ := newTestServer(t, 0)
	created, _ := createSession(t, h, "")
	base := "/sessions/" + created.ID

	doJSON(t, h, http.MethodPost, base+"/messages", `{"message":"Is rice healthy?"}`, nil)

	rec := doJSON(t, h, http.MethodGet, base+"/history", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hist struct {
		History []completion.Message `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.Len(t, hist.History, 3)

	rec = doJSON(t, h, http.MethodDelete, base+"/history", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, base+"/history", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.Empty(t, hist.History)
}

func TestSpanishSession(t *testing.T) {
	_, h, _ := newTestServer(t, 0)
	created, _ := createSession(t, h, `{"locale":"es"}`)

	assert.Equal(t, locales.Spanish, created.Locale)
	require.Len(t, created.History, 1)
	assert.Equal(t, locales.Sprintf(locales.Spanish, locales.MsgWelcome), created.History[0].Content)
	assert.NotEqual(t, locales.MsgWelcome, created.History[0].Content)
}

func TestChatSocket(t *testing.T) {
	srv, h, _ := newTestServer(t, 0)
	ts := httptest.NewServer(h)
	defer ts.Close()

	created, _ := createSession(t, h, "")
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sessions/" + created.ID + "/ws"

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()
	_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	require.NoError(t, ws.WriteJSON(messageRequest{QuickAction: "dance"}))
	var ev socketEvent
	require.NoError(t, ws.ReadJSON(&ev))
	assert.Equal(t, "error", ev.Type)

	require.NoError(t, ws.WriteJSON(messageRequest{Message: "What should I eat for breakfast?"}))
	ev = socketEvent{}
	require.NoError(t, ws.ReadJSON(&ev))
	assert.Equal(t, "reply", ev.Type)
	assert.Equal(t, "Try oatmeal with berries.", ev.Reply)
	assert.Len(t, ev.History, 3)

	assert.Equal(t, 1, srv.hub.Count(created.ID))

	// deleting the session closes its sockets
	rec := doJSON(t, h, http.MethodDelete, "/sessions/"+created.ID, "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	_, _, err = ws.ReadMessage()
	assert.Error(t, err)
}

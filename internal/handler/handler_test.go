package handler_test

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/iavo-ui/internal/backend"
	"github.com/iliyamo/iavo-ui/internal/handler"
	"github.com/iliyamo/iavo-ui/internal/model"
	"github.com/iliyamo/iavo-ui/internal/router"
	"github.com/iliyamo/iavo-ui/internal/view"
)

// fakeBackend is the node API: GET /api/health and POST /creator/update-profile.
type fakeBackend struct {
	*httptest.Server
	healthStatus int
	healthBody   string
	updateStatus int
	updateBody   string
	updates      atomic.Int32
	lastBody     atomic.Value
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{
		healthStatus: http.StatusOK,
		healthBody:   `{"status":"ok"}`,
		updateStatus: http.StatusOK,
		updateBody:   `{"ok":true}`,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fb.healthStatus)
		_, _ = io.WriteString(w, fb.healthBody)
	})
	mux.HandleFunc("/creator/update-profile", func(w http.ResponseWriter, r *http.Request) {
		fb.updates.Add(1)
		b, _ := io.ReadAll(r.Body)
		fb.lastBody.Store(string(b))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fb.updateStatus)
		_, _ = io.WriteString(w, fb.updateBody)
	})
	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Close)
	return fb
}

type chanPublisher chan model.ProfileUpdateEvent

func (p chanPublisher) PublishProfileUpdate(_ context.Context, ev model.ProfileUpdateEvent) error {
	p <- ev
	return nil
}

type app struct {
	e    *echo.Echo
	logs *bytes.Buffer
}

func newApp(t *testing.T, baseURL string, audit handler.AuditPublisher) *app {
	t.Helper()
	r, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = r
	logs := &bytes.Buffer{}
	e.Logger.SetOutput(logs)

	client := backend.New(baseURL+"/api/health", baseURL+"/creator/update-profile", 0)
	router.RegisterRoutes(e)
	router.RegisterPages(e, handler.NewHomeHandler(client), handler.NewProfileHandler(client, audit), router.Middlewares{})
	return &app{e: e, logs: logs}
}

func (a *app) do(req *http.Request) (*httptest.ResponseRecorder, string) {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec, html.UnescapeString(rec.Body.String())
}

func (a *app) get(path string) (*httptest.ResponseRecorder, string) {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *app) submit(form url.Values) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return a.do(req)
}

var aliceForm = url.Values{"creator_id": {"c1"}, "name": {"Alice"}, "tier": {"gold"}}

func TestHomeRendersHealthStatus(t *testing.T) {
	fb := newFakeBackend(t)
	a := newApp(t, fb.URL, nil)

	rec, body := a.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "<pre id=\"health\">{\n  \"status\": \"ok\"\n}</pre>")
	assert.NotContains(t, body, "Loading health status...")
}

func TestHomeKeepsPlaceholderOnFailure(t *testing.T) {
	fb := newFakeBackend(t)
	fb.healthStatus = http.StatusServiceUnavailable
	a := newApp(t, fb.URL, nil)

	rec, body := a.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Loading health status...")
	assert.NotContains(t, body, "<pre")
	assert.Contains(t, a.logs.String(), "Error fetching health")
}

func TestHomeKeepsPlaceholderWhenBackendDown(t *testing.T) {
	fb := newFakeBackend(t)
	base := fb.URL
	fb.Close()
	a := newApp(t, base, nil)

	_, body := a.get("/")
	assert.Contains(t, body, "Loading health status...")
	assert.Contains(t, a.logs.String(), "Error fetching health")
}

func TestHealthAPIPassThrough(t *testing.T) {
	fb := newFakeBackend(t)
	fb.healthBody = `{"status":"iAVO node alive","node_id":"n-1"}`
	a := newApp(t, fb.URL, nil)

	rec, _ := a.get("/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"iAVO node alive","node_id":"n-1"}`, rec.Body.String())

	fb.healthStatus = http.StatusInternalServerError
	rec, _ = a.get("/api/health")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"backend unavailable"}`, rec.Body.String())
}

func TestLiveness(t *testing.T) {
	a := newApp(t, "http://127.0.0.1:1", nil)
	rec, body := a.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body)
}

func TestProfileFormIsEmpty(t *testing.T) {
	a := newApp(t, "http://127.0.0.1:1", nil)
	rec, body := a.get("/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `<input name="creator_id" value="" required>`)
	assert.NotContains(t, body, "<pre")
}

func TestProfileSubmitPostsExactBody(t *testing.T) {
	fb := newFakeBackend(t)
	a := newApp(t, fb.URL, nil)

	rec, body := a.submit(aliceForm)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"creator_id":"c1","name":"Alice","tier":"gold"}`, fb.lastBody.Load())
	assert.Contains(t, body, "<pre id=\"response\">{\n  \"ok\": true\n}</pre>")
	assert.Contains(t, body, `<input name="name" value="Alice" required>`)
}

func TestProfileSubmitShowsErrorLiteral(t *testing.T) {
	fb := newFakeBackend(t)
	fb.updateStatus = http.StatusNotFound
	fb.updateBody = `{"detail":"Creator not found"}`
	a := newApp(t, fb.URL, nil)

	_, body := a.submit(aliceForm)
	assert.Contains(t, body, "<pre id=\"response\">Error updating profile</pre>")
	assert.NotContains(t, body, "Creator not found")
	assert.Contains(t, a.logs.String(), "Error updating profile")
}

func TestProfileSubmitIncompleteNeverCallsBackend(t *testing.T) {
	fb := newFakeBackend(t)
	a := newApp(t, fb.URL, nil)

	for _, missing := range []string{"creator_id", "name", "tier"} {
		form := url.Values{}
		for k, v := range aliceForm {
			if k != missing {
				form[k] = v
			}
		}
		rec, body := a.submit(form)
		assert.Equal(t, http.StatusBadRequest, rec.Code, missing)
		assert.NotContains(t, body, "<pre", missing)
	}
	assert.Zero(t, fb.updates.Load())
}

func TestProfileSubmitPublishesAudit(t *testing.T) {
	fb := newFakeBackend(t)
	events := make(chanPublisher, 2)
	a := newApp(t, fb.URL, events)

	a.submit(aliceForm)
	fb.updateStatus = http.StatusNotFound
	a.submit(aliceForm)

	got := make([]model.ProfileUpdateEvent, 0, 2)
	for len(got) < 2 {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected 2 audit events, got %d", len(got))
		}
	}
	outcomes := map[string]int{}
	for _, ev := range got {
		assert.Equal(t, "c1", ev.CreatorID)
		assert.Equal(t, "gold", ev.Tier)
		outcomes[ev.Outcome] = ev.BackendStatus
	}
	assert.Equal(t, map[string]int{model.OutcomeUpdated: http.StatusOK, model.OutcomeFailed: http.StatusNotFound}, outcomes)
}

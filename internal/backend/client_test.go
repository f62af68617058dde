package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/iavo-ui/internal/model"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/health", "", 0)
	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Fields["status"])
	assert.Equal(t, "{\n  \"status\": \"ok\"\n}", h.Pretty())
}

func TestHealthFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		code   int
	}{
		{"server error", http.StatusInternalServerError, `{"detail":"boom"}`, http.StatusInternalServerError},
		{"not found", http.StatusNotFound, `{"detail":"Not Found"}`, http.StatusNotFound},
		{"not json", http.StatusOK, `alive`, 0},
		{"array", http.StatusOK, `[1,2]`, 0},
		{"null", http.StatusOK, `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := New(srv.URL, "", 0).Health(context.Background())
			require.Error(t, err)
			assert.Equal(t, tc.code, StatusCode(err))
		})
	}
}

func TestHealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, "", 0).Health(context.Background())
	require.Error(t, err)
	assert.Zero(t, StatusCode(err))
}

func TestUpdateProfile(t *testing.T) {
	var gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/creator/update-profile", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c := New("", srv.URL+"/creator/update-profile", 0)
	raw, err := c.UpdateProfile(context.Background(), model.ProfileForm{CreatorID: "c1", Name: "Alice", Tier: "gold"})
	require.NoError(t, err)
	assert.Equal(t, `{"creator_id":"c1","name":"Alice","tier":"gold"}`, gotBody)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, `{"ok":true}`, string(raw))
}

func TestUpdateProfileRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Creator not found"}`)
	}))
	defer srv.Close()

	_, err := New("", srv.URL, 0).UpdateProfile(context.Background(), model.ProfileForm{CreatorID: "x", Name: "y", Tier: "z"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, http.MethodPost, se.Method)
}

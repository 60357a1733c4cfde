package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("localhost:8080", time.Second)
	assert.Error(t, err)

	c, err := New("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestDoJSON_RoundTripAndSession(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get(sessionHeader))
		mu.Unlock()
		w.Header().Set(sessionHeader, "sess-1")

		switch r.URL.Path {
		case "/echo":
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"raw": in["raw"],
				"q":   r.URL.Query().Get("q"),
			})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL, time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	var out map[string]string
	require.NoError(t, c.DoJSON(ctx, http.MethodPost, "echo", map[string][]string{"q": {"gato"}}, map[string]string{"raw": "41"}, &out))
	assert.Equal(t, map[string]string{"raw": "41", "q": "gato"}, out)
	assert.Equal(t, "sess-1", c.SessionID())

	require.NoError(t, c.Delete(ctx, "/me/session"))

	// primera llamada sin sesión; la segunda reusa la que asignó el servidor
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "sess-1"}, seen)
}

func TestDoJSON_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := New(ts.URL, time.Second)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/pets/99", nil, nil)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusBadRequest))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "pet not found", he.Body)
}

func TestDoJSON_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c, err := New(ts.URL, time.Second)
	require.NoError(t, err)

	var out map[string]any
	assert.Error(t, c.Get(context.Background(), "/", nil, &out))
}

func TestDoJSON_NilClient(t *testing.T) {
	var c *Client
	assert.Error(t, c.DoJSON(context.Background(), http.MethodGet, "/", nil, nil, nil))
}

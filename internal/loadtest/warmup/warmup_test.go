package warmup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/loadtest/warmup"
)

func TestRun_KeepsServedPaths(t *testing.T) {
	var mu sync.Mutex
	var bypass []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		bypass = append(bypass, r.Header.Get("X-Rate-Limit-Bypass"))
		mu.Unlock()
		if r.URL.Path == "/nothing.svg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml;charset=utf-8")
		_, _ = w.Write([]byte("<svg/>"))
	}))
	defer srv.Close()

	paths := []string{"/npm/v/express.svg", "/nothing.svg", "/gem/v/rails.svg"}
	warmed, err := warmup.Run(context.Background(), srv.URL, paths, warmup.Options{
		BypassSecret: "s3cret",
		Timeout:      time.Second,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/npm/v/express.svg", "/gem/v/rails.svg"}, warmed)
	assert.Len(t, bypass, 3)
	for _, b := range bypass {
		assert.Equal(t, "s3cret", b)
	}
}

func TestRun_TransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := warmup.Run(context.Background(), url, []string{"/gem/v/rails.svg"}, warmup.Options{Timeout: time.Second})
	assert.Error(t, err)
}

package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetcher() *HTTPFetcher {
	return NewHTTPFetcher(FetcherConfig{
		MaxBytes:        16,
		ResponseTimeout: time.Second,
		Deadline:        2 * time.Second,
	}, nil)
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/big.png", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	})
	mux.HandleFunc("/chunked.png", func(w http.ResponseWriter, _ *http.Request) {
		for i := 0; i < 8; i++ {
			_, _ = w.Write([]byte("abcd"))
			w.(http.Flusher).Flush()
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{name: "success", path: "/ok.png", want: "png-bytes"},
		{name: "not found", path: "/missing.png", wantErr: "unexpected status 404"},
		{name: "declared too large", path: "/big.png", wantErr: ErrImageTooLarge.Error()},
		{name: "streamed too large", path: "/chunked.png", wantErr: ErrImageTooLarge.Error()},
	}

	f := testFetcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := f.Fetch(context.Background(), srv.URL+tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestHTTPFetcher_SlowResponse(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	f := NewHTTPFetcher(FetcherConfig{ResponseTimeout: 50 * time.Millisecond, Deadline: time.Second}, nil)
	start := time.Now()
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	_, err := testFetcher().Fetch(context.Background(), "://bad")
	assert.Error(t, err)
}

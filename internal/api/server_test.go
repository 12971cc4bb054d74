package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mtlprog/gold2btc/internal/config"
)

func TestNewServerUsesConfig(t *testing.T) {
	srv := NewServer(config.Config{
		HTTPPort:     "9999",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
		MaxTableRows: 10,
	})

	if srv.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", srv.Addr)
	}
	if srv.ReadTimeout != time.Second || srv.WriteTimeout != 2*time.Second || srv.IdleTimeout != 3*time.Second {
		t.Errorf("timeouts = %v/%v/%v", srv.ReadTimeout, srv.WriteTimeout, srv.IdleTimeout)
	}
}

func TestMuxRoutes(t *testing.T) {
	ts := httptest.NewServer(NewMux(10))
	defer ts.Close()

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/skill.md", http.StatusOK},
		{"/api/v1/assets", http.StatusOK},
		{"/api/v1/convert?asset=silver&value=0", http.StatusOK},
		{"/api/v1/convert", http.StatusBadRequest},
		{"/api/v1/convert?asset=btc&value=1e400", http.StatusBadRequest},
		{"/api/v1/convert?asset=silver&value=1e307", http.StatusBadRequest},
		{"/?asset=silver&value=1e307", http.StatusOK},
		{"/?asset=btc&value=1e400", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.want)
			}
		})
	}
}

package api

import (
	"net/http"

	"github.com/mtlprog/gold2btc/internal/config"
	"github.com/mtlprog/gold2btc/internal/static"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(cfg config.Config) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      NewMux(cfg.MaxTableRows),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// NewMux registers every route on a fresh ServeMux.
func NewMux(maxTableRows int) *http.ServeMux {
	handler := NewHandler(maxTableRows)
	page := NewPageHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", page.Index)
	mux.HandleFunc("GET /skill.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(static.SkillMD)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/v1/convert", handler.Convert)
	mux.HandleFunc("GET /api/v1/assets", handler.ListAssets)
	mux.HandleFunc("GET /api/v1/table.xlsx", handler.ExportTable)

	return mux
}

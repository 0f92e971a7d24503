// internal/debug/server.go
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"corridor-defense/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler отдаёт внутреннее состояние игры для отладки.
type Handler struct {
	Hub *SnapshotHub
}

func NewHandler(hub *SnapshotHub) *Handler {
	return &Handler{Hub: hub}
}

// NewRouter собирает роутер отладочного сервера.
func NewRouter(hub *SnapshotHub) http.Handler {
	h := NewHandler(hub)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/debug", func(r chi.Router) {
		r.Get("/state", h.handleState)
		r.Get("/path", h.handlePath)
		r.Get("/ws", h.handleStream)
		// /debug/pprof/*
		r.Mount("/", middleware.Profiler())
	})
}

// /debug/state - последний снимок
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.Hub.Latest()
	if !ok {
		http.Error(w, "no snapshot published yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snapshot)
}

// /debug/path - точки коридора
func (h *Handler) handlePath(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Hub.Path())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}

// Serve запускает сервер и останавливает его по отмене контекста.
func Serve(ctx context.Context, addr string, hub *SnapshotHub) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(hub),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Warn("debug server shutdown failed")
		}
	}()

	logger.Log.Infof("Debug server listening on http://%s/debug/state", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Package httpapi отдает инструменты расчета по HTTP и websocket.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/logging"
	"github.com/cloud-ru/rentbuy-go/internal/tools"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// maxBodyBytes ограничивает размер JSON-запроса
const maxBodyBytes = 64 << 10

// Server - HTTP-обертка над инструментами
type Server struct {
	handlers map[string]tools.ToolHandler
	limiter  *RateLimiter
	logger   *zap.Logger

	// closing закрывается при остановке сервера и завершает live-сессии
	closing   chan struct{}
	closeOnce sync.Once
}

// NewServer создает сервер. limiter может быть nil - тогда лимит не применяется.
func NewServer(handlers map[string]tools.ToolHandler, limiter *RateLimiter, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		limiter:  limiter,
		logger:   logging.OrNop(logger),
		closing:  make(chan struct{}),
	}
}

// CloseLive завершает все открытые websocket-сессии. http.Server.Shutdown
// не закрывает перехваченные соединения, поэтому Run вызывает этот метод
// через onShutdown.
func (s *Server) CloseLive() {
	s.closeOnce.Do(func() { close(s.closing) })
}

// Routes регистрирует все маршруты сервиса
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/projection", s.limit(s.toolEndpoint(tools.ToolProjection)))
	mux.Handle("/api/break-even", s.limit(s.toolEndpoint(tools.ToolBreakEven)))
	mux.Handle("/api/mortgage", s.limit(s.toolEndpoint(tools.ToolMortgage)))
	mux.Handle("/ws/projection", s.limit(http.HandlerFunc(s.liveProjection)))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}

func (s *Server) limit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return RateLimitMiddleware(s.limiter, next)
}

func (s *Server) toolEndpoint(toolName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var params map[string]interface{}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&params); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := s.call(r.Context(), toolName, params)
		if err != nil {
			writeError(w, StatusFor(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func (s *Server) call(ctx context.Context, toolName string, params map[string]interface{}) (interface{}, error) {
	handler, ok := s.handlers[toolName]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", toolName)
	}
	return handler(ctx, params)
}

// StatusFor сопоставляет ошибку инструмента HTTP-статусу
func StatusFor(err error) int {
	switch {
	case errors.Is(err, tools.ErrInvalidParameter), errors.Is(err, tools.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, calculations.ErrNoResult):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
// Функции onShutdown вызываются в начале остановки.
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger, onShutdown ...func()) error {
	logger = logging.OrNop(logger)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	for _, f := range onShutdown {
		server.RegisterOnShutdown(f)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

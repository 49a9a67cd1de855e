package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type stateProvider interface {
	State() entity.GameState
}

// Server exposes the health check, a read-only board snapshot and the WebSocket endpoint.
type Server struct {
	logger *slog.Logger
	engine stateProvider
	socket http.Handler
}

func New(logger *slog.Logger, engine stateProvider, socket http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		engine: engine,
		socket: socket,
	}
}

// Handler - builds the router.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ping", that.pingHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/state", that.stateHandler).Methods(http.MethodGet)
	router.Handle("/ws", that.socket)

	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{that.logger}))(router)
}

// Start - serves HTTP on the given port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: that.Handler(),
		// no ReadTimeout: it would also cut idle WebSocket connections
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

// stateHandler - returns the current board as JSON.
func (that *Server) stateHandler(w http.ResponseWriter, _ *http.Request) {
	state := that.engine.State()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		that.logger.Error("failed to encode state", "error", err)
	}
}

type recoveryLogger struct {
	logger *slog.Logger
}

func (that recoveryLogger) Println(values ...any) {
	that.logger.Error("recovered from panic", "panic", fmt.Sprint(values...))
}

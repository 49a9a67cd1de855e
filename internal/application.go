package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	hub := websocket.NewHub(logger)
	defer hub.Close()

	presenters := tictactoe.Presenters{hub, tictactoe.NewLogPresenter(logger)}

	if conf.Redis.Enabled {
		redisClient, err := redis.Connect(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		log.Info("Publishing game events to Redis", "channel", conf.Redis.Channel)
		presenters = append(presenters, redis.NewPublisher(logger, redisClient, conf.Redis.Channel))
	}

	engine := tictactoe.NewGameEngine(logger, presenters)
	engine.NewGame()

	wsServer := websocket.New(logger, engine, hub)
	httpServer := rest.New(logger, engine, wsServer)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- httpServer.Start(ctx, conf.HTTPPort)
	}()

	select {
	case err := <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return <-httpErrCh
	}
}

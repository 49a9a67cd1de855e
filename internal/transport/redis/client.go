package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

// Publishing runs inside the engine lock: an unreachable server delays a move by up to
// publishTimeout per event.
const publishTimeout = 2 * time.Second

// Connect opens a client and checks that the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// Publisher mirrors engine notifications onto a Redis pub/sub channel.
type Publisher struct {
	*tictactoe.EventPresenter

	logger  *slog.Logger
	client  *redis.Client
	channel string
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string) *Publisher {
	publisher := &Publisher{
		logger:  logger.With("component", "redis", "channel", channel),
		client:  client,
		channel: channel,
	}
	publisher.EventPresenter = tictactoe.NewEventPresenter(publisher.publish)

	return publisher
}

// publish - failures are logged and never reach the engine.
func (that *Publisher) publish(event tictactoe.Event) {
	log := that.logger.With("method", "publish", "event", event.Type)

	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to marshal event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		log.Error("failed to publish event", "error", err)
	}
}

type Subscription struct {
	logger *slog.Logger
	pubsub *redis.PubSub
	events chan tictactoe.Event
	done   chan struct{}

	closeOnce sync.Once
}

// Subscribe returns once the subscription is confirmed by the server.
func (that *Publisher) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := that.client.Subscribe(ctx, that.channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", that.channel, err)
	}

	subscription := &Subscription{
		logger: that.logger.With("method", "subscribe"),
		pubsub: pubsub,
		events: make(chan tictactoe.Event),
		done:   make(chan struct{}),
	}

	go subscription.run()

	return subscription, nil
}

// Events is closed after Close.
func (that *Subscription) Events() <-chan tictactoe.Event {
	return that.events
}

// Close is safe to call more than once.
func (that *Subscription) Close() error {
	var err error
	that.closeOnce.Do(func() {
		close(that.done)
		err = that.pubsub.Close()
	})

	if err != nil {
		return fmt.Errorf("failed to close subscription: %w", err)
	}

	return nil
}

func (that *Subscription) run() {
	defer close(that.events)

	for message := range that.pubsub.Channel() {
		var event tictactoe.Event
		if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
			that.logger.Error("failed to unmarshal event", "error", err)
			continue
		}

		select {
		case that.events <- event:
		case <-that.done:
			return
		}
	}
}

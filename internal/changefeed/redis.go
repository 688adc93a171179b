package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fight-tracker/internal/errors"
	redisclient "github.com/KirkDiggler/fight-tracker/internal/redis"
)

// RedisConfig contains configuration for the Redis pub/sub feed
type RedisConfig struct {
	Client redisclient.Client
	Buffer int
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Redis is a Feed over Redis pub/sub, one channel per fight
type Redis struct {
	client redisclient.Client
	buffer int
}

// NewRedis creates a Redis-backed feed
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Redis{client: cfg.Client, buffer: buffer}, nil
}

// Publish sends the event on the fight's channel
func (r *Redis) Publish(ctx context.Context, event Event) error {
	if event.FightID == "" {
		return errors.InvalidArgument("event fight ID cannot be empty")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal change event")
	}

	if err := r.client.Publish(ctx, Channel(event.FightID), data).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish change event")
	}
	return nil
}

// Subscribe subscribes to the fight's channel and waits for the server to
// confirm before returning
func (r *Redis) Subscribe(ctx context.Context, fightID string) (Subscription, error) {
	if fightID == "" {
		return nil, errors.InvalidArgument("fight ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, Channel(fightID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to subscribe to change feed")
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		ch:     make(chan Event, r.buffer),
		done:   make(chan struct{}),
	}
	sub.wg.Add(1)
	go sub.pump(fightID)

	slog.DebugContext(ctx, "subscribed to change feed", "fight_id", fightID)
	return sub, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	ch     chan Event
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func (s *redisSubscription) pump(fightID string) {
	defer s.wg.Done()
	defer close(s.ch)

	msgs := s.pubsub.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				// still a signal that something changed
				slog.Warn("undecodable change event",
					"fight_id", fightID,
					"error", err.Error())
				event = Event{FightID: fightID}
			}
			offer(s.ch, event)
		}
	}
}

func (s *redisSubscription) Events() <-chan Event {
	return s.ch
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
		s.wg.Wait()
	})
	return err
}

var _ Feed = (*Redis)(nil)

// Package roster keeps a live, initiative-ordered view of one fight's
// participants. The change feed is only an invalidation trigger: on any event
// the engine re-reads the whole roster from the store.
package roster

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"
)

// Lister reads a roster as a given viewer may see it; combat.Service satisfies it
type Lister interface {
	ListParticipants(ctx context.Context, input *combat.ListParticipantsInput) (*combat.ListParticipantsOutput, error)
}

// ChangeFunc receives every freshly fetched roster
type ChangeFunc func(participants []*entities.Participant)

// ErrorFunc receives fetch and feed errors; the engine keeps running after them
type ErrorFunc func(err error)

// Config holds the dependencies and scope of an engine
type Config struct {
	Lister     Lister
	Subscriber changefeed.Subscriber

	FightID         string
	ViewerAccountID string

	// Debounce waits this long after an event for more to arrive before
	// re-fetching. Zero re-fetches as soon as the pending events are drained.
	Debounce time.Duration
	// FetchTimeout bounds each re-fetch; zero means no bound
	FetchTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lister == nil {
		vb.RequiredField("Lister")
	}
	if c.Subscriber == nil {
		vb.RequiredField("Subscriber")
	}
	errors.ValidateRequired("FightID", c.FightID, vb)
	if c.Debounce < 0 {
		vb.InvalidField("Debounce", "cannot be negative")
	}

	return vb.Build()
}

// Engine is a pull-on-notify roster cache for one (viewer, fight) pair
type Engine struct {
	lister       Lister
	subscriber   changefeed.Subscriber
	fightID      string
	viewer       string
	debounce     time.Duration
	fetchTimeout time.Duration

	mu        sync.RWMutex
	snapshot  []*entities.Participant
	fetchedAt time.Time
	onChange  []ChangeFunc
	onError   []ErrorFunc
	started   bool

	sub     changefeed.Subscription
	cancel  context.CancelFunc
	done    chan struct{}
	closing chan struct{}
	once    sync.Once
}

// NewEngine creates an engine; call Start to begin syncing
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{
		lister:       cfg.Lister,
		subscriber:   cfg.Subscriber,
		fightID:      cfg.FightID,
		viewer:       cfg.ViewerAccountID,
		debounce:     cfg.Debounce,
		fetchTimeout: cfg.FetchTimeout,
		done:         make(chan struct{}),
		closing:      make(chan struct{}),
	}, nil
}

// OnChange registers a listener for new rosters. Listeners run on the engine's
// goroutine, one at a time, and should not block.
func (e *Engine) OnChange(fn ChangeFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = append(e.onChange, fn)
}

// OnError registers a listener for fetch and feed errors
func (e *Engine) OnError(fn ErrorFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onError = append(e.onError, fn)
}

// Start subscribes to the fight's changes, fetches the initial roster and
// hands it to the OnChange listeners. The engine runs until Close is called or
// ctx is cancelled.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.started || e.isClosing() {
		e.mu.Unlock()
		return errors.FailedPrecondition("engine already started or closed")
	}
	e.started = true
	e.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)

	// subscribe before the first read so a change landing in between is not lost
	sub, err := e.subscriber.Subscribe(runCtx, e.fightID)
	if err != nil {
		cancel()
		close(e.done)
		return errors.Wrapf(err, "failed to subscribe to fight %s", e.fightID)
	}

	participants, err := e.fetch(runCtx)
	if err != nil {
		_ = sub.Close()
		cancel()
		close(e.done)
		return err
	}

	e.mu.Lock()
	if e.isClosing() {
		e.mu.Unlock()
		_ = sub.Close()
		cancel()
		close(e.done)
		return errors.FailedPrecondition("engine closed")
	}
	e.sub = sub
	e.cancel = cancel
	e.mu.Unlock()

	e.publish(participants)

	go e.run(runCtx)

	slog.DebugContext(ctx, "roster sync started",
		"fight_id", e.fightID,
		"viewer", e.viewer,
		"participants", len(participants))

	return nil
}

// Snapshot returns the most recently fetched roster
func (e *Engine) Snapshot() []*entities.Participant {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*entities.Participant, len(e.snapshot))
	copy(out, e.snapshot)
	return out
}

// FetchedAt reports when the current snapshot was read
func (e *Engine) FetchedAt() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fetchedAt
}

// Done is closed once the engine has stopped
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Close releases the subscription and waits for the engine to stop. No
// listener runs after Close returns.
func (e *Engine) Close() error {
	var err error
	e.once.Do(func() {
		e.mu.Lock()
		close(e.closing)
		sub, cancel, started := e.sub, e.cancel, e.started
		e.mu.Unlock()

		if !started {
			// Start will refuse to run, so nothing else closes done
			close(e.done)
			return
		}
		if sub == nil {
			// Start is still fetching; it sees closing and closes done
			return
		}

		cancel()
		err = sub.Close()
		<-e.done
	})
	return err
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)

	events := e.sub.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				if !e.isClosing() && ctx.Err() == nil {
					e.fail(errors.Unavailable("change feed closed"))
				}
				return
			}
		}

		if !e.coalesce(ctx, events) {
			return
		}

		participants, err := e.fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			e.fail(err)
			continue
		}
		if e.isClosing() {
			return
		}
		e.publish(participants)
	}
}

// coalesce absorbs events that are already queued, plus any that arrive within
// the debounce window, so a burst costs one re-fetch. It reports false when the
// engine should stop.
func (e *Engine) coalesce(ctx context.Context, events <-chan changefeed.Event) bool {
	var window <-chan time.Time
	if e.debounce > 0 {
		timer := time.NewTimer(e.debounce)
		defer timer.Stop()
		window = timer.C
	}

	for {
		if window == nil {
			select {
			case _, ok := <-events:
				if !ok {
					return false
				}
			case <-ctx.Done():
				return false
			default:
				return true
			}
			continue
		}

		select {
		case _, ok := <-events:
			if !ok {
				return false
			}
		case <-ctx.Done():
			return false
		case <-window:
			return true
		}
	}
}

func (e *Engine) fetch(ctx context.Context) ([]*entities.Participant, error) {
	if e.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.fetchTimeout)
		defer cancel()
	}

	out, err := e.lister.ListParticipants(ctx, &combat.ListParticipantsInput{
		FightID:         e.fightID,
		ViewerAccountID: e.viewer,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch roster for fight %s", e.fightID)
	}
	return out.Participants, nil
}

func (e *Engine) publish(participants []*entities.Participant) {
	e.mu.Lock()
	e.snapshot = participants
	e.fetchedAt = time.Now()
	listeners := make([]ChangeFunc, len(e.onChange))
	copy(listeners, e.onChange)
	e.mu.Unlock()

	for _, fn := range listeners {
		out := make([]*entities.Participant, len(participants))
		copy(out, participants)
		fn(out)
	}
}

func (e *Engine) fail(err error) {
	slog.Warn("roster sync error", "fight_id", e.fightID, "error", err)

	e.mu.RLock()
	listeners := make([]ErrorFunc, len(e.onError))
	copy(listeners, e.onError)
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(err)
	}
}

func (e *Engine) isClosing() bool {
	select {
	case <-e.closing:
		return true
	default:
		return false
	}
}

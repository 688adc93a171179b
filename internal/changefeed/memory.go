package changefeed

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/fight-tracker/internal/errors"
)

// Memory is an in-process Feed for single-node deployments and tests. Each
// fight is an event type on an rpg-toolkit bus named by Channel, and each
// subscription is a bus handler feeding a buffered channel.
type Memory struct {
	bus    *events.Bus
	mu     sync.Mutex
	subs   map[string]map[*memorySubscription]struct{}
	buffer int
}

// NewMemory creates an in-memory feed
func NewMemory() *Memory {
	return &Memory{
		bus:    events.NewBus(),
		subs:   make(map[string]map[*memorySubscription]struct{}),
		buffer: DefaultBuffer,
	}
}

// Publish delivers the event to every live subscription of its fight. The
// change travels as the game event's target.
func (m *Memory) Publish(ctx context.Context, event Event) error {
	if event.FightID == "" {
		return errors.InvalidArgument("event fight ID cannot be empty")
	}
	if err := m.bus.Publish(ctx, events.NewGameEvent(Channel(event.FightID), nil, event)); err != nil {
		return errors.Wrap(err, "failed to publish change")
	}
	return nil
}

// Subscribe opens a subscription for fightID
func (m *Memory) Subscribe(_ context.Context, fightID string) (Subscription, error) {
	if fightID == "" {
		return nil, errors.InvalidArgument("fight ID cannot be empty")
	}

	sub := &memorySubscription{
		feed:    m,
		fightID: fightID,
		ch:      make(chan Event, m.buffer),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	sub.busID = m.bus.SubscribeFunc(Channel(fightID), 0, sub.handle)
	if m.subs[fightID] == nil {
		m.subs[fightID] = make(map[*memorySubscription]struct{})
	}
	m.subs[fightID][sub] = struct{}{}

	return sub, nil
}

// Subscribers returns the number of live subscriptions for a fight
func (m *Memory) Subscribers(fightID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs[fightID])
}

// Close ends every open subscription; their event channels are closed
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for fightID, set := range m.subs {
		for sub := range set {
			sub.stop()
		}
		delete(m.subs, fightID)
	}
	m.bus.ClearAll()
	return nil
}

func (m *Memory) remove(sub *memorySubscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := m.subs[sub.fightID]
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(m.subs, sub.fightID)
	}
	_ = m.bus.Unsubscribe(sub.busID)
	sub.stop()
}

type memorySubscription struct {
	feed    *Memory
	fightID string
	busID   string
	once    sync.Once

	// mu orders sends against close: the bus may still be running this
	// handler from a publish that began before Unsubscribe
	mu     sync.Mutex
	closed bool
	ch     chan Event
}

func (s *memorySubscription) handle(_ context.Context, ev events.Event) error {
	change, ok := ev.Target().(Event)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		offer(s.ch, change)
	}
	return nil
}

func (s *memorySubscription) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func (s *memorySubscription) Events() <-chan Event {
	return s.ch
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() { s.feed.remove(s) })
	return nil
}

var _ Feed = (*Memory)(nil)

package store

import (
	"context"
	"sync"
	"time"

	"github.com/arieltecnotron/tecnobot-v1/conversation"
	"github.com/rs/zerolog/log"
)

type memoryEntry struct {
	state    conversation.State
	deadline time.Time
}

// Memory is the in-process conversation store. Entries carry a TTL so that
// abandoned dialogs do not accumulate forever; a janitor goroutine sweeps
// expired entries and Get checks lazily as well.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewMemory constructs an in-memory store. ttl of zero disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	if ttl > 0 {
		go m.janitor()
	}
	return m
}

func (m *Memory) Get(_ context.Context, senderID string) (conversation.State, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[senderID]
	m.mu.RUnlock()

	if !ok {
		return conversation.State{}, false, nil
	}
	if m.expired(entry, time.Now()) {
		m.mu.Lock()
		delete(m.entries, senderID)
		m.mu.Unlock()
		return conversation.State{}, false, nil
	}
	return entry.state, true, nil
}

func (m *Memory) Set(_ context.Context, senderID string, state conversation.State) error {
	entry := memoryEntry{state: state}
	if m.ttl > 0 {
		entry.deadline = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[senderID] = entry
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, senderID string) error {
	m.mu.Lock()
	delete(m.entries, senderID)
	m.mu.Unlock()
	return nil
}

func (m *Memory) ActiveSenders(_ context.Context) ([]string, error) {
	now := time.Now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	senders := make([]string, 0, len(m.entries))
	for senderID, entry := range m.entries {
		if m.expired(entry, now) {
			continue
		}
		senders = append(senders, senderID)
	}
	return senders, nil
}

func (m *Memory) Backend() string {
	return "memory"
}

// Close stops the janitor. The store remains usable afterwards.
func (m *Memory) Close() error {
	m.once.Do(func() { close(m.stop) })
	return nil
}

func (m *Memory) expired(entry memoryEntry, now time.Time) bool {
	return !entry.deadline.IsZero() && now.After(entry.deadline)
}

func (m *Memory) janitor() {
	interval := m.ttl
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.sweep(now)
		}
	}
}

func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	removed := 0
	for senderID, entry := range m.entries {
		if m.expired(entry, now) {
			delete(m.entries, senderID)
			removed++
		}
	}
	m.mu.Unlock()

	if removed > 0 {
		log.Info().
			Int("removed", removed).
			Msg("Expired idle conversations")
	}
}

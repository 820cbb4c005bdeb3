package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"agri-assistant/internal/assistant"
	"agri-assistant/pkg/log"
)

const LogPrefixSession = "internal.session"

// Factory builds a fresh assistant for a new session.
type Factory func() assistant.UseCase

// Manager hands out one assistant per session ID. Sessions live in an
// expirable LRU, so idle farmers age out and a hard cap bounds memory.
// An evicted session restarts with an empty profile and history; the
// shared report store is unaffected.
type Manager struct {
	l        log.Logger
	factory  Factory
	mu       sync.Mutex
	sessions *expirable.LRU[string, assistant.UseCase]
}

// NewManager creates a session manager holding at most maxSessions
// assistants, each expiring ttl after last use.
func NewManager(l log.Logger, factory Factory, maxSessions int, ttl time.Duration) *Manager {
	return &Manager{
		l:        l,
		factory:  factory,
		sessions: expirable.NewLRU[string, assistant.UseCase](maxSessions, nil, ttl),
	}
}

// Get resolves the assistant for the given session ID, creating it on
// first use. An empty ID starts a new session; the (possibly generated)
// ID is returned so callers can hand it back to the client.
func (m *Manager) Get(ctx context.Context, id string) (assistant.UseCase, string) {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if uc, ok := m.sessions.Get(id); ok {
		return uc, id
	}

	uc := m.factory()
	m.sessions.Add(id, uc)
	m.l.Infof(ctx, "%s: started session %s (%d active)", LogPrefixSession, id, m.sessions.Len())
	return uc, id
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.Len()
}

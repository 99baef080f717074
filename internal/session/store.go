// Package session keeps short chat transcripts keyed by session ID.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"afyabuddy/internal/models"
)

const (
	// DefaultMaxMessages is how many messages a transcript retains
	DefaultMaxMessages = 10

	// DefaultTTL is how long an idle transcript is kept
	DefaultTTL = 24 * time.Hour
)

// ErrNotFound is returned when a session has no stored transcript
var ErrNotFound = errors.New("session not found")

// Store persists chat transcripts
type Store interface {
	// Load returns the transcript for a session, oldest first
	Load(ctx context.Context, sessionID string) ([]models.Message, error)

	// Append adds messages and trims the transcript to the newest entries
	Append(ctx context.Context, sessionID string, msgs ...models.Message) error
}

// trim keeps only the newest max messages
func trim(history []models.Message, limit int) []models.Message {
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history
}

type memoryEntry struct {
	messages  []models.Message
	expiresAt time.Time
}

// MemoryStore is an in-process Store used when no Redis is configured
type MemoryStore struct {
	mu          sync.Mutex
	sessions    map[string]*memoryEntry
	maxMessages int
	ttl         time.Duration
	now         func() time.Time
}

// NewMemoryStore creates an in-memory store. Non-positive arguments select the defaults.
func NewMemoryStore(maxMessages int, ttl time.Duration) *MemoryStore {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions:    make(map[string]*memoryEntry),
		maxMessages: maxMessages,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, ErrNotFound
	}

	out := make([]models.Message, len(entry.messages))
	copy(out, entry.messages)
	return out, nil
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, msgs ...models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || s.now().After(entry.expiresAt) {
		entry = &memoryEntry{}
		s.sessions[sessionID] = entry
	}

	entry.messages = trim(append(entry.messages, msgs...), s.maxMessages)
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}

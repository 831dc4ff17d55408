// Package session holds the single session-token slot of the client.
//
// The slot is an explicit object handed to the API client, so independent
// sessions (for example in parallel tests) never share state. An empty token
// means "not logged in".
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/vidwave/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vidwave/internal/common"
)

// Store reads and writes the current session token.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// PersistentStore keeps the token in local durable storage under
// common.TokenStorageKey, so it survives restarts.
type PersistentStore struct {
	repo metadata.Repository
}

func NewPersistentStore(repo metadata.Repository) *PersistentStore {
	return &PersistentStore{repo: repo}
}

func (s *PersistentStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return token, nil
}

func (s *PersistentStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	if err := s.repo.Set(ctx, common.TokenStorageKey, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *PersistentStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.TokenStorageKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

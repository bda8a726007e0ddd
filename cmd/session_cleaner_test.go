package main

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"
)

type fakeSessionStore struct {
	mu            sync.Mutex
	sessionSweeps int
	tokenSweeps   int
	swept         chan struct{}
}

func (s *fakeSessionStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionSweeps++
	return 2, nil
}

func (s *fakeSessionStore) DeleteExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	s.tokenSweeps++
	s.mu.Unlock()
	s.swept <- struct{}{}
	return 1, nil
}

func TestSessionCleanerSweepsOnStart(t *testing.T) {
	store := &fakeSessionStore{swept: make(chan struct{}, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	discard := log.New(io.Discard, "", 0)
	startSessionCleaner(ctx, store, discard, discard)

	select {
	case <-store.swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate sweep on start")
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.sessionSweeps != 1 {
		t.Fatalf("expected 1 session sweep, got %d", store.sessionSweeps)
	}
	if store.tokenSweeps != 1 {
		t.Fatalf("expected 1 reset token sweep, got %d", store.tokenSweeps)
	}
}

func TestSessionCleanerToleratesNilStore(t *testing.T) {
	discard := log.New(io.Discard, "", 0)
	startSessionCleaner(context.Background(), nil, discard, discard)
}

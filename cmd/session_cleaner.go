package main

import (
	"context"
	"log"
	"time"
)

const (
	sessionCleanInterval = 24 * time.Hour
	sessionCleanTimeout  = 30 * time.Second
)

// sessionStore is the slice of the user repository the cleaner needs.
type sessionStore interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	DeleteExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// startSessionCleaner sweeps expired sessions and password reset tokens once
// a day. Expired rows are already unusable, the sweep only keeps the tables
// from growing without bound.
func startSessionCleaner(ctx context.Context, store sessionStore, infoLog, errorLog *log.Logger) {
	if store == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(sessionCleanInterval)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, sessionCleanTimeout)
			defer cancel()

			now := time.Now()
			sessions, err := store.DeleteExpiredSessions(runCtx, now)
			if err != nil {
				errorLog.Printf("session cleaner: sessions: %v", err)
			} else if sessions > 0 {
				infoLog.Printf("session cleaner: removed %d expired sessions", sessions)
			}

			tokens, err := store.DeleteExpiredPasswordResetTokens(runCtx, now)
			if err != nil {
				errorLog.Printf("session cleaner: reset tokens: %v", err)
			} else if tokens > 0 {
				infoLog.Printf("session cleaner: removed %d expired reset tokens", tokens)
			}
		}

		runOnce()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}

package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RefreshTokenPurger deletes refresh tokens that expired or were revoked before a cutoff.
type RefreshTokenPurger interface {
	PurgeRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}

type TokenJobs struct {
	purger    RefreshTokenPurger
	retention time.Duration
	now       func() time.Time
}

// NewTokenJobs keeps dead refresh tokens for retention before removing them.
func NewTokenJobs(purger RefreshTokenPurger, retention time.Duration) *TokenJobs {
	return &TokenJobs{
		purger:    purger,
		retention: retention,
		now:       time.Now,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_stale_refresh_tokens", interval, j.PurgeStaleRefreshTokens)
}

func (j *TokenJobs) PurgeStaleRefreshTokens(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)
	deleted, err := j.purger.PurgeRefreshTokens(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: purged stale refresh tokens", "count", deleted, "cutoff", cutoff)
	}
	return nil
}

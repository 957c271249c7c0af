// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
)

var errInvalidSweepInterval = errors.New("sweep interval must be positive")

// RateWindowJanitor evicts expired rate-limit windows so that identifiers
// seen once do not stay in memory for the life of the process.
type RateWindowJanitor struct {
	limiters []*guard.RateLimiter
	interval time.Duration
	logger   *logger.Logger
}

func NewRateWindowJanitor(interval time.Duration, logger *logger.Logger, limiters ...*guard.RateLimiter) (*RateWindowJanitor, error) {
	if interval <= 0 {
		return nil, errInvalidSweepInterval
	}
	return &RateWindowJanitor{
		limiters: limiters,
		interval: interval,
		logger:   logger,
	}, nil
}

func (j *RateWindowJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("rate window janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("rate window janitor stopped")
			return nil
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep runs one eviction pass over every limiter and returns the number of
// windows evicted.
func (j *RateWindowJanitor) Sweep() int {
	evicted := 0
	for _, l := range j.limiters {
		evicted += l.Sweep(l.Now())
	}
	if evicted > 0 {
		j.logger.Debug().Int("evicted", evicted).Msg("expired rate windows evicted")
	}
	return evicted
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close shuts the pool down. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("Closing database connection pool")
	db.Pool.Close()
	db.Pool = nil
	return nil
}

// PoolStats is a snapshot of pool counters
type PoolStats struct {
	TotalConns           int32         `json:"totalConns"`
	IdleConns            int32         `json:"idleConns"`
	AcquiredConns        int32         `json:"acquiredConns"`
	MaxConns             int32         `json:"maxConns"`
	AcquireCount         int64         `json:"acquireCount"`
	CanceledAcquireCount int64         `json:"canceledAcquireCount"`
	AvgAcquireDuration   time.Duration `json:"avgAcquireDurationNs"`
}

// Stats returns the current pool counters
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:           raw.TotalConns(),
		IdleConns:            raw.IdleConns(),
		AcquiredConns:        raw.AcquiredConns(),
		MaxConns:             raw.MaxConns(),
		AcquireCount:         raw.AcquireCount(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		AvgAcquireDuration:   calculateAvgDuration(raw.AcquireDuration(), raw.AcquireCount()),
	}, nil
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}

// utilization returns acquired/max as a percentage
func (s *PoolStats) utilization() float64 {
	if s.MaxConns == 0 {
		return 0
	}
	return float64(s.AcquiredConns) / float64(s.MaxConns) * 100
}

// MonitorPoolHealth logs a warning when the pool runs hot.
// Blocks until ctx is cancelled; run it in its own goroutine.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("Pool stats unavailable")
				continue
			}

			if pct := stats.utilization(); pct > 80 {
				log.Warn().
					Float64("utilization_pct", pct).
					Int32("acquired", stats.AcquiredConns).
					Int32("max", stats.MaxConns).
					Msg("High pool utilization")
			}
			if stats.AvgAcquireDuration > 100*time.Millisecond {
				log.Warn().Dur("avg_acquire", stats.AvgAcquireDuration).Msg("High pool acquire latency")
			}

		case <-ctx.Done():
			return
		}
	}
}

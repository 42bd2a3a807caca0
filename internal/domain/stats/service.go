package stats

import "context"

// StatsService defines the interface for statistics operations
type StatsService interface {
	// GetSnapshot computes the full statistics snapshot over a trailing
	// window of months. months <= 0 selects the configured default; values
	// above the hard cap are clamped.
	GetSnapshot(ctx context.Context, months int) (*Snapshot, error)
}

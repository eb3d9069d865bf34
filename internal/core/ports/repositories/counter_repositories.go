package repositories

import "context"

// CounterRepository holds named monotonically increasing counters.
type CounterRepository interface {
	// Increment atomically adds one to the counter named key, creating it at zero first
	// if absent, and returns the new value.
	Increment(ctx context.Context, key string) (int64, error)
}

package memory

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
)

// CounterRepository keeps counters in a map guarded by a mutex. It is only atomic
// within one process.
type CounterRepository struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewCounterRepository creates an empty counter set.
func NewCounterRepository() *CounterRepository {
	return &CounterRepository{counters: make(map[string]int64)}
}

var _ portsrepo.CounterRepository = (*CounterRepository)(nil)

func (r *CounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[key]++
	return r.counters[key], nil
}

// NewRepositoryProvider wires the in-memory document store and counters.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Documents: NewDocumentStore(),
		Counters:  NewCounterRepository(),
	}
}

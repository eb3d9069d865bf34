package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCounterRepository increments rows of the counters table with a single upsert.
type PgxCounterRepository struct {
	BaseRepository
}

func newPgxCounterRepository(pool *pgxpool.Pool) *PgxCounterRepository {
	return &PgxCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterRepository = (*PgxCounterRepository)(nil)

// Increment creates the counter at 1 or bumps it, returning the new value in the same statement.
func (r *PgxCounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	query := `
		INSERT INTO counters (key, value, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (key) DO UPDATE SET
			value = counters.value + 1,
			updated_at = now()
		RETURNING value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		return 0, storeError("failed to increment counter "+key, err)
	}
	return value, nil
}

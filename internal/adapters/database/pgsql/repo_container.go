package pgsql

import (
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres document store and counters.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Documents: newPgxDocumentStore(dbPool),
		Counters:  newPgxCounterRepository(dbPool),
	}
}

// NewCounterRepository exposes the Postgres counters on their own, for mixing with another document store.
func NewCounterRepository(dbPool *pgxpool.Pool) portsrepo.CounterRepository {
	return newPgxCounterRepository(dbPool)
}

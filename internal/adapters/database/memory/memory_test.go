package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func doc(id, voucherType, status string, version int64, date string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"voucher_type":%q,"status":%q,"version":%d,"voucher_date":%q}`,
		id, voucherType, status, version, date))
}

func TestDocumentStore_GetCreate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()

	_, err := store.Get(ctx, "cash_vouchers", "a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.Create(ctx, "cash_vouchers", "a", doc("a", "RECEIPT", "DRAFT", 1, "2025-01-01T00:00:00Z")))
	got, err := store.Get(ctx, "cash_vouchers", "a")
	require.NoError(t, err)
	assert.Contains(t, string(got), `"id":"a"`)

	err = store.Create(ctx, "cash_vouchers", "a", doc("a", "RECEIPT", "DRAFT", 1, "2025-01-01T00:00:00Z"))
	assert.ErrorIs(t, err, apperrors.ErrStore)
}

func TestDocumentStore_ReplaceIf(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.Create(ctx, "c", "a", doc("a", "RECEIPT", "DRAFT", 1, "2025-01-01T00:00:00Z")))

	err := store.ReplaceIf(ctx, "c", "a", doc("a", "RECEIPT", "POSTED", 2, "2025-01-01T00:00:00Z"),
		portsrepo.Precondition{Statuses: []string{"DRAFT"}, Version: 2})
	assert.ErrorIs(t, err, portsrepo.ErrPreconditionFailed, "stale version")

	err = store.ReplaceIf(ctx, "c", "a", doc("a", "RECEIPT", "POSTED", 2, "2025-01-01T00:00:00Z"),
		portsrepo.Precondition{Statuses: []string{"POSTED"}, Version: 1})
	assert.ErrorIs(t, err, portsrepo.ErrPreconditionFailed, "status not allowed")

	err = store.ReplaceIf(ctx, "c", "a", doc("a", "RECEIPT", "POSTED", 2, "2025-01-01T00:00:00Z"),
		portsrepo.Precondition{Statuses: []string{"DRAFT"}, Version: 1})
	require.NoError(t, err)

	err = store.ReplaceIf(ctx, "c", "missing", nil, portsrepo.Precondition{Statuses: []string{"DRAFT"}, Version: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDocumentStore_DeleteIf(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.Create(ctx, "c", "a", doc("a", "RECEIPT", "POSTED", 2, "2025-01-01T00:00:00Z")))

	err := store.DeleteIf(ctx, "c", "a", portsrepo.Precondition{Statuses: []string{"DRAFT"}, Version: 2})
	assert.ErrorIs(t, err, portsrepo.ErrPreconditionFailed)

	require.NoError(t, store.DeleteIf(ctx, "c", "a", portsrepo.Precondition{Statuses: []string{"POSTED"}, Version: 2}))
	_, err = store.Get(ctx, "c", "a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDocumentStore_Query(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.Create(ctx, "c", "1", doc("1", "RECEIPT", "DRAFT", 1, "2025-01-10T00:00:00Z")))
	require.NoError(t, store.Create(ctx, "c", "2", doc("2", "PAYMENT", "DRAFT", 1, "2025-01-15T00:00:00Z")))
	require.NoError(t, store.Create(ctx, "c", "3", doc("3", "RECEIPT", "POSTED", 1, "2025-02-01T00:00:00Z")))
	require.NoError(t, store.Create(ctx, "c", "4", doc("4", "RECEIPT", "DRAFT", 1, "2025-03-01T08:00:00+07:00")))

	got, err := store.Query(ctx, "c", []portsrepo.Filter{portsrepo.Eq("voucher_type", "RECEIPT")}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = store.Query(ctx, "c", []portsrepo.Filter{portsrepo.Eq("voucher_type", "RECEIPT")}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, string(got[0]), `"id":"1"`, "ordered by id")

	got, err = store.Query(ctx, "c", []portsrepo.Filter{
		portsrepo.TimeGte("voucher_date", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		portsrepo.TimeLte("voucher_date", time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)),
	}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3, "bounds are inclusive and compared as instants")

	got, err = store.Query(ctx, "empty", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCounterRepository_ConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCounterRepository()
	const callers = 100

	values := make([]int64, callers)
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			v, err := repo.Increment(ctx, "PT2025")
			values[i] = v
			return err
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]bool, callers)
	for _, v := range values {
		assert.False(t, seen[v], "duplicate value %d", v)
		seen[v] = true
		assert.True(t, v >= 1 && v <= callers)
	}

	next, err := repo.Increment(ctx, "PT2025")
	require.NoError(t, err)
	assert.EqualValues(t, callers+1, next)

	other, err := repo.Increment(ctx, "PC2025")
	require.NoError(t, err)
	assert.EqualValues(t, 1, other)
}

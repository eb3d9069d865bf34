package pgsql

import (
	"net/http"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// storeError wraps a driver failure so callers see it as apperrors.ErrStore.
func storeError(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

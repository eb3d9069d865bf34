package pgsql

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentStore keeps JSON documents in the documents table, one row per document.
type PgxDocumentStore struct {
	BaseRepository
}

// newPgxDocumentStore creates a new document store backed by the pool.
func newPgxDocumentStore(pool *pgxpool.Pool) *PgxDocumentStore {
	return &PgxDocumentStore{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentStore = (*PgxDocumentStore)(nil)

func (s *PgxDocumentStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2;`
	var data []byte
	if err := s.Pool.QueryRow(ctx, query, collection, id).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError(fmt.Sprintf("failed to get document %s/%s", collection, id), err)
	}
	return data, nil
}

func (s *PgxDocumentStore) Create(ctx context.Context, collection, id string, data []byte) error {
	query := `
		INSERT INTO documents (collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, now(), now());
	`
	if _, err := s.Pool.Exec(ctx, query, collection, id, string(data)); err != nil {
		return storeError(fmt.Sprintf("failed to create document %s/%s", collection, id), err)
	}
	return nil
}

func (s *PgxDocumentStore) ReplaceIf(ctx context.Context, collection, id string, data []byte, pre portsrepo.Precondition) error {
	query := `
		UPDATE documents
		SET data = $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2
		  AND data->>'status' = ANY($4)
		  AND COALESCE((data->>'version')::bigint, 0) = $5;
	`
	tag, err := s.Pool.Exec(ctx, query, collection, id, string(data), pre.Statuses, pre.Version)
	if err != nil {
		return storeError(fmt.Sprintf("failed to replace document %s/%s", collection, id), err)
	}
	if tag.RowsAffected() == 0 {
		return s.classifyMiss(ctx, collection, id)
	}
	return nil
}

func (s *PgxDocumentStore) DeleteIf(ctx context.Context, collection, id string, pre portsrepo.Precondition) error {
	query := `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
		  AND data->>'status' = ANY($3)
		  AND COALESCE((data->>'version')::bigint, 0) = $4;
	`
	tag, err := s.Pool.Exec(ctx, query, collection, id, pre.Statuses, pre.Version)
	if err != nil {
		return storeError(fmt.Sprintf("failed to delete document %s/%s", collection, id), err)
	}
	if tag.RowsAffected() == 0 {
		return s.classifyMiss(ctx, collection, id)
	}
	return nil
}

// classifyMiss tells a missing row apart from a failed precondition after a conditional write matched nothing.
func (s *PgxDocumentStore) classifyMiss(ctx context.Context, collection, id string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM documents WHERE collection = $1 AND id = $2);`
	if err := s.Pool.QueryRow(ctx, query, collection, id).Scan(&exists); err != nil {
		return storeError(fmt.Sprintf("failed to check document %s/%s", collection, id), err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return portsrepo.ErrPreconditionFailed
}

func (s *PgxDocumentStore) Query(ctx context.Context, collection string, filters []portsrepo.Filter, limit int) ([][]byte, error) {
	query, args, err := buildDocumentQuery(collection, filters, limit)
	if err != nil {
		return nil, err
	}
	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("failed to query "+collection, err)
	}
	defer rows.Close()

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]byte, error) {
		var data []byte
		err := row.Scan(&data)
		return data, err
	})
	if err != nil {
		return nil, storeError("failed to scan "+collection, err)
	}
	return docs, nil
}

// fieldName restricts filter fields to plain identifiers so they can be written into the
// SQL text. The predicates must spell out the same expressions as the indexes on documents.
var fieldName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// buildDocumentQuery renders filters as predicates on top-level JSONB fields. Values
// travel as bind parameters.
func buildDocumentQuery(collection string, filters []portsrepo.Filter, limit int) (string, []any, error) {
	var sb strings.Builder
	args := []any{collection}
	sb.WriteString("SELECT data FROM documents WHERE collection = $1")

	for _, f := range filters {
		var op string
		switch f.Op {
		case portsrepo.OpEq:
			op = "="
		case portsrepo.OpGte, portsrepo.OpLte:
			op = string(f.Op)
		default:
			return "", nil, fmt.Errorf("%w: unsupported filter operator %q", apperrors.ErrValidation, f.Op)
		}
		if !fieldName.MatchString(f.Field) {
			return "", nil, fmt.Errorf("%w: unsupported filter field %q", apperrors.ErrValidation, f.Field)
		}
		args = append(args, f.Value)
		if f.Kind == portsrepo.KindTime {
			fmt.Fprintf(&sb, " AND document_timestamptz(data->>'%s') %s $%d::timestamptz", f.Field, op, len(args))
		} else {
			fmt.Fprintf(&sb, " AND data->>'%s' %s $%d", f.Field, op, len(args))
		}
	}

	sb.WriteString(" ORDER BY id")
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	return sb.String(), args, nil
}

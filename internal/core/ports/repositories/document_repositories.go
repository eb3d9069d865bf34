package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrPreconditionFailed is returned by conditional writes when the stored document's
// status or version no longer matches the caller's expectation.
var ErrPreconditionFailed = errors.New("document precondition failed")

// FilterOp is a comparison operator understood by every document store.
type FilterOp string

const (
	OpEq  FilterOp = "=="
	OpGte FilterOp = ">="
	OpLte FilterOp = "<="
)

// FilterKind tells the store how to compare a field value.
type FilterKind int

const (
	// KindText compares field values as plain strings.
	KindText FilterKind = iota
	// KindTime compares RFC 3339 timestamps chronologically.
	KindTime
)

// Filter is a single predicate on a top-level document field.
type Filter struct {
	Field string
	Op    FilterOp
	Value string
	Kind  FilterKind
}

// Eq builds an equality filter.
func Eq(field, value string) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// TimeGte builds an inclusive lower bound on a timestamp field.
func TimeGte(field string, t time.Time) Filter {
	return Filter{Field: field, Op: OpGte, Value: t.UTC().Format(time.RFC3339Nano), Kind: KindTime}
}

// TimeLte builds an inclusive upper bound on a timestamp field.
func TimeLte(field string, t time.Time) Filter {
	return Filter{Field: field, Op: OpLte, Value: t.UTC().Format(time.RFC3339Nano), Kind: KindTime}
}

// Precondition guards a conditional write: the stored document's "status" must be
// one of Statuses and its "version" must equal Version.
type Precondition struct {
	Statuses []string
	Version  int64
}

// Allows reports whether a stored status/version pair satisfies the precondition.
func (p Precondition) Allows(status string, version int64) bool {
	if version != p.Version {
		return false
	}
	for _, s := range p.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// DocumentReader defines read operations on a schemaless document collection.
type DocumentReader interface {
	// Get returns the JSON body of a document, or apperrors.ErrNotFound.
	Get(ctx context.Context, collection, id string) ([]byte, error)

	// Query returns JSON bodies matching every filter, ordered by document id.
	// A limit of zero or less returns every match.
	Query(ctx context.Context, collection string, filters []Filter, limit int) ([][]byte, error)
}

// DocumentWriter defines write operations on a schemaless document collection.
type DocumentWriter interface {
	// Create inserts a new document. An existing id is a store error.
	Create(ctx context.Context, collection, id string, data []byte) error

	// ReplaceIf atomically replaces a document when its stored state satisfies pre.
	// Returns apperrors.ErrNotFound or ErrPreconditionFailed otherwise.
	ReplaceIf(ctx context.Context, collection, id string, data []byte, pre Precondition) error

	// DeleteIf atomically removes a document when its stored state satisfies pre.
	DeleteIf(ctx context.Context, collection, id string, pre Precondition) error
}

// DocumentStore combines document reads and writes.
type DocumentStore interface {
	DocumentReader
	DocumentWriter
}

// Package memory provides process-local repository implementations for tests and local development.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
)

// DocumentStore keeps JSON documents per collection behind a single mutex.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string]map[string][]byte)}
}

var _ portsrepo.DocumentStore = (*DocumentStore)(nil)

// lifecycleState is the slice of a document a precondition looks at.
type lifecycleState struct {
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return clone(doc), nil
}

func (s *DocumentStore) Create(ctx context.Context, collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string][]byte)
		s.collections[collection] = docs
	}
	if _, exists := docs[id]; exists {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("document %s/%s already exists", collection, id), nil)
	}
	docs[id] = clone(data)
	return nil
}

func (s *DocumentStore) ReplaceIf(ctx context.Context, collection, id string, data []byte, pre portsrepo.Precondition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(collection, id, pre); err != nil {
		return err
	}
	s.collections[collection][id] = clone(data)
	return nil
}

func (s *DocumentStore) DeleteIf(ctx context.Context, collection, id string, pre portsrepo.Precondition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkLocked(collection, id, pre); err != nil {
		return err
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *DocumentStore) checkLocked(collection, id string, pre portsrepo.Precondition) error {
	doc, ok := s.collections[collection][id]
	if !ok {
		return apperrors.ErrNotFound
	}
	var state lifecycleState
	if err := json.Unmarshal(doc, &state); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to read stored document state", err)
	}
	if !pre.Allows(state.Status, state.Version) {
		return portsrepo.ErrPreconditionFailed
	}
	return nil
}

func (s *DocumentStore) Query(ctx context.Context, collection string, filters []portsrepo.Filter, limit int) ([][]byte, error) {
	s.mu.RLock()
	docs := s.collections[collection]
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out [][]byte
	for _, id := range ids {
		if limit > 0 && len(out) >= limit {
			break
		}
		var fields map[string]any
		if err := json.Unmarshal(docs[id], &fields); err != nil {
			s.mu.RUnlock()
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read stored document "+id, err)
		}
		if matchesAll(fields, filters) {
			out = append(out, clone(docs[id]))
		}
	}
	s.mu.RUnlock()
	return out, nil
}

func matchesAll(fields map[string]any, filters []portsrepo.Filter) bool {
	for _, f := range filters {
		raw, ok := fields[f.Field].(string)
		if !ok || !matches(raw, f) {
			return false
		}
	}
	return true
}

func matches(value string, f portsrepo.Filter) bool {
	cmp := compareText(value, f.Value)
	if f.Kind == portsrepo.KindTime {
		cmp = compareTime(value, f.Value)
	}
	switch f.Op {
	case portsrepo.OpEq:
		return cmp == 0
	case portsrepo.OpGte:
		return cmp >= 0
	case portsrepo.OpLte:
		return cmp <= 0
	}
	return false
}

func compareText(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTime(a, b string) int {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA != nil || errB != nil {
		return compareText(a, b)
	}
	return ta.Compare(tb)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

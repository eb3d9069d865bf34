package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/models"
)

// voucherCodec binds a voucher kind to its collection and stored representation.
type voucherCodec[V domain.Voucher] struct {
	kind       string
	collection string
	encode     func(V) ([]byte, error)
	decode     func([]byte) (V, error)
}

// lifecycle implements create, read, conditional transitions and listing for one voucher kind.
// Every write after creation is conditional on the status and version that were read, so two
// racing transitions cannot both succeed.
type lifecycle[V domain.Voucher] struct {
	BaseService
	codec    voucherCodec[V]
	store    portsrepo.DocumentStore
	sequence portssvc.SequenceAllocator
}

func (l *lifecycle[V]) get(ctx context.Context, id string) (V, error) {
	var zero V
	data, err := l.store.Get(ctx, l.codec.collection, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return zero, fmt.Errorf("%s %s: %w", l.codec.kind, id, apperrors.ErrNotFound)
		}
		l.LogError(ctx, err, "Failed to load voucher", slog.String("kind", l.codec.kind), slog.String("voucher_id", id))
		return zero, err
	}
	v, err := l.codec.decode(data)
	if err != nil {
		l.LogError(ctx, err, "Stored voucher could not be decoded", slog.String("kind", l.codec.kind), slog.String("voucher_id", id))
		return zero, err
	}
	return v, nil
}

// create numbers, normalizes, validates and persists v as a new Draft.
func (l *lifecycle[V]) create(ctx context.Context, v V, userID string) (V, error) {
	var zero V
	now := l.Now()
	h := v.Header()
	h.ID = l.NewID()
	h.Status = domain.StatusDraft
	h.Version = 1
	h.CreatedAt, h.CreatedBy, h.UpdatedAt = now, userID, now
	h.LifecycleStamps = domain.LifecycleStamps{}

	v.Normalize(l.NewID)
	if err := v.Validate(); err != nil {
		l.LogWarn(ctx, err, "Rejected voucher", slog.String("kind", l.codec.kind))
		return zero, err
	}

	voucherNo, err := l.sequence.Allocate(ctx, v.SequencePrefix(), now.Year())
	if err != nil {
		return zero, err
	}
	h.VoucherNo = voucherNo

	data, err := l.codec.encode(v)
	if err != nil {
		l.LogError(ctx, err, "Failed to encode voucher", slog.String("kind", l.codec.kind))
		return zero, err
	}
	if err := l.store.Create(ctx, l.codec.collection, h.ID, data); err != nil {
		l.LogError(ctx, err, "Failed to save voucher", slog.String("kind", l.codec.kind), slog.String("voucher_no", voucherNo))
		return zero, err
	}

	l.LogInfo(ctx, "Voucher created",
		slog.String("kind", l.codec.kind),
		slog.String("voucher_id", h.ID),
		slog.String("voucher_no", voucherNo),
		slog.String("user_id", userID))
	return v, nil
}

// transition loads the voucher, checks that op is allowed from its status, applies mutate and
// writes the result back only if status and version are unchanged since the read.
func (l *lifecycle[V]) transition(ctx context.Context, id, op string, allowed []domain.VoucherStatus, mutate func(v V, now time.Time) error) (V, error) {
	var zero V
	v, err := l.get(ctx, id)
	if err != nil {
		return zero, err
	}
	h := v.Header()
	if !slices.Contains(allowed, h.Status) {
		err := l.invalidTransition(id, op, h.Status)
		l.LogWarn(ctx, err, "Rejected voucher transition", slog.String("kind", l.codec.kind), slog.String("voucher_id", id), slog.String("op", op))
		return zero, err
	}

	readVersion := h.Version
	now := l.Now()
	if err := mutate(v, now); err != nil {
		l.LogWarn(ctx, err, "Rejected voucher change", slog.String("kind", l.codec.kind), slog.String("voucher_id", id), slog.String("op", op))
		return zero, err
	}
	h.Version = readVersion + 1
	h.UpdatedAt = now

	data, err := l.codec.encode(v)
	if err != nil {
		l.LogError(ctx, err, "Failed to encode voucher", slog.String("kind", l.codec.kind), slog.String("voucher_id", id))
		return zero, err
	}
	if err := l.store.ReplaceIf(ctx, l.codec.collection, id, data, precondition(allowed, readVersion)); err != nil {
		return zero, l.classifyWriteFailure(ctx, id, op, allowed, err)
	}

	l.LogInfo(ctx, "Voucher "+op,
		slog.String("kind", l.codec.kind),
		slog.String("voucher_id", id),
		slog.String("status", string(h.Status)),
		slog.Int64("version", h.Version))
	return v, nil
}

// remove deletes a Draft voucher, conditional on the status and version that were read.
func (l *lifecycle[V]) remove(ctx context.Context, id, userID string) error {
	v, err := l.get(ctx, id)
	if err != nil {
		return err
	}
	h := v.Header()
	if !slices.Contains(domain.EditableStatuses, h.Status) {
		err := l.invalidTransition(id, "deleted", h.Status)
		l.LogWarn(ctx, err, "Rejected voucher delete", slog.String("kind", l.codec.kind), slog.String("voucher_id", id))
		return err
	}
	if err := l.store.DeleteIf(ctx, l.codec.collection, id, precondition(domain.EditableStatuses, h.Version)); err != nil {
		return l.classifyWriteFailure(ctx, id, "deleted", domain.EditableStatuses, err)
	}
	l.LogInfo(ctx, "Voucher deleted",
		slog.String("kind", l.codec.kind),
		slog.String("voucher_id", id),
		slog.String("voucher_no", h.VoucherNo),
		slog.String("user_id", userID))
	return nil
}

// classifyWriteFailure turns a failed conditional write into NotFound, InvalidTransition or Conflict
// by re-reading the current document.
func (l *lifecycle[V]) classifyWriteFailure(ctx context.Context, id, op string, allowed []domain.VoucherStatus, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("%s %s: %w", l.codec.kind, id, apperrors.ErrNotFound)
	case !errors.Is(err, portsrepo.ErrPreconditionFailed):
		l.LogError(ctx, err, "Failed to write voucher", slog.String("kind", l.codec.kind), slog.String("voucher_id", id), slog.String("op", op))
		return err
	}

	current, getErr := l.get(ctx, id)
	if getErr != nil {
		return getErr
	}
	status := current.Header().Status
	if !slices.Contains(allowed, status) {
		err := l.invalidTransition(id, op, status)
		l.LogWarn(ctx, err, "Voucher changed status concurrently", slog.String("kind", l.codec.kind), slog.String("voucher_id", id))
		return err
	}
	conflict := fmt.Errorf("%s %s was modified concurrently: %w", l.codec.kind, id, apperrors.ErrConflict)
	l.LogWarn(ctx, conflict, "Voucher version conflict", slog.String("kind", l.codec.kind), slog.String("voucher_id", id))
	return conflict
}

func (l *lifecycle[V]) invalidTransition(id, op string, status domain.VoucherStatus) error {
	return fmt.Errorf("%w: %s %s is %s and cannot be %s", apperrors.ErrInvalidTransition, l.codec.kind, id, status, op)
}

func precondition(allowed []domain.VoucherStatus, version int64) portsrepo.Precondition {
	statuses := make([]string, len(allowed))
	for i, s := range allowed {
		statuses[i] = string(s)
	}
	return portsrepo.Precondition{Statuses: statuses, Version: version}
}

// scan returns every voucher of the filter's type whose date lies in the filter's range.
// The type and date range are evaluated by the store.
func (l *lifecycle[V]) scan(ctx context.Context, filter domain.VoucherFilter) ([]V, error) {
	var filters []portsrepo.Filter
	if filter.VoucherType != "" {
		filters = append(filters, portsrepo.Eq(models.FieldVoucherType, filter.VoucherType))
	}
	if filter.FromDate != nil {
		filters = append(filters, portsrepo.TimeGte(models.FieldVoucherDate, *filter.FromDate))
	}
	if filter.ToDate != nil {
		filters = append(filters, portsrepo.TimeLte(models.FieldVoucherDate, *filter.ToDate))
	}
	return l.query(ctx, filters, 0)
}

// list returns at most filter.EffectiveLimit() vouchers, newest voucher date first.
//
// Only the voucher type is evaluated by the store, over a window of twice the limit; status,
// date and extra predicates are applied to that window. Matching vouchers outside the window
// are not returned.
func (l *lifecycle[V]) list(ctx context.Context, filter domain.VoucherFilter, extra func(V) bool) ([]V, error) {
	limit := filter.EffectiveLimit()
	var filters []portsrepo.Filter
	if filter.VoucherType != "" {
		filters = append(filters, portsrepo.Eq(models.FieldVoucherType, filter.VoucherType))
	}
	window, err := l.query(ctx, filters, limit*2)
	if err != nil {
		return nil, err
	}

	out := make([]V, 0, len(window))
	for _, v := range window {
		if !matchesHeader(v.Header(), filter) {
			continue
		}
		if extra != nil && !extra(v) {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		hi, hj := out[i].Header(), out[j].Header()
		if !hi.VoucherDate.Equal(hj.VoucherDate) {
			return hi.VoucherDate.After(hj.VoucherDate)
		}
		return hi.VoucherNo > hj.VoucherNo
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *lifecycle[V]) query(ctx context.Context, filters []portsrepo.Filter, limit int) ([]V, error) {
	docs, err := l.store.Query(ctx, l.codec.collection, filters, limit)
	if err != nil {
		l.LogError(ctx, err, "Failed to query vouchers", slog.String("kind", l.codec.kind))
		return nil, err
	}
	vouchers := make([]V, 0, len(docs))
	for _, data := range docs {
		v, err := l.codec.decode(data)
		if err != nil {
			l.LogError(ctx, err, "Stored voucher could not be decoded", slog.String("kind", l.codec.kind))
			return nil, err
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

func matchesHeader(h *domain.VoucherHeader, filter domain.VoucherFilter) bool {
	if filter.Status != "" && h.Status != filter.Status {
		return false
	}
	if filter.FromDate != nil && h.VoucherDate.Before(*filter.FromDate) {
		return false
	}
	if filter.ToDate != nil && h.VoucherDate.After(*filter.ToDate) {
		return false
	}
	return true
}

func derefAll[T any](ptrs []*T) []T {
	out := make([]T, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
)

// sequenceDigits is the zero-padded width of the running number.
const sequenceDigits = 5

type sequenceService struct {
	BaseService
	counters portsrepo.CounterRepository
}

// NewSequenceService allocates voucher numbers from per prefix and year counters.
func NewSequenceService(counters portsrepo.CounterRepository) portssvc.SequenceAllocator {
	return &sequenceService{BaseService: newBaseService(), counters: counters}
}

// SequenceKey names the counter for prefix and year, e.g. "PT2025".
func SequenceKey(prefix string, year int) string {
	return fmt.Sprintf("%s%d", prefix, year)
}

// FormatVoucherNo renders prefix, year and the running number, e.g. "PT202500001".
func FormatVoucherNo(prefix string, year int, n int64) string {
	return fmt.Sprintf("%s%d%0*d", prefix, year, sequenceDigits, n)
}

// Allocate increments the counter atomically in the backing store and formats the result.
// Numbers are never reused, so a voucher that fails to persist leaves a gap.
func (s *sequenceService) Allocate(ctx context.Context, prefix string, year int) (string, error) {
	key := SequenceKey(prefix, year)
	n, err := s.counters.Increment(ctx, key)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate voucher number", slog.String("counter", key))
		return "", err
	}
	s.LogDebug(ctx, "Allocated voucher number", slog.String("counter", key), slog.Int64("value", n))
	return FormatVoucherNo(prefix, year, n), nil
}

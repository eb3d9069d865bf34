package mapping

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/SscSPs/voucher_management_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelVoucherHeader converts a domain VoucherHeader to its persisted form.
func ToModelVoucherHeader(d domain.VoucherHeader) models.VoucherHeader {
	return models.VoucherHeader{
		ID:          d.ID,
		VoucherNo:   d.VoucherNo,
		VoucherDate: d.VoucherDate.UTC(),
		Status:      string(d.Status),
		AuditFields: models.AuditFields{
			Version:   d.Version,
			CreatedAt: d.CreatedAt.UTC(),
			CreatedBy: d.CreatedBy,
			UpdatedAt: timePtr(d.UpdatedAt),
		},
		PostedAt:     utcPtr(d.PostedAt),
		PostedBy:     strPtr(d.PostedBy),
		CancelledAt:  utcPtr(d.CancelledAt),
		CancelledBy:  strPtr(d.CancelledBy),
		CancelReason: strPtr(d.CancelReason),
	}
}

// ToDomainVoucherHeader converts a persisted header, rejecting unknown statuses.
func ToDomainVoucherHeader(m models.VoucherHeader) (domain.VoucherHeader, error) {
	status, err := domain.ParseVoucherStatus(m.Status)
	if err != nil {
		return domain.VoucherHeader{}, corrupt(m.ID, err)
	}
	return domain.VoucherHeader{
		ID:          m.ID,
		VoucherNo:   m.VoucherNo,
		VoucherDate: m.VoucherDate,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
			UpdatedAt: timeVal(m.UpdatedAt),
			Version:   m.Version,
		},
		LifecycleStamps: domain.LifecycleStamps{
			PostedAt:     m.PostedAt,
			PostedBy:     strVal(m.PostedBy),
			CancelledAt:  m.CancelledAt,
			CancelledBy:  strVal(m.CancelledBy),
			CancelReason: strVal(m.CancelReason),
		},
	}, nil
}

// corrupt reports a stored document that no longer satisfies the domain rules.
func corrupt(id string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("stored voucher %s is invalid", id), err)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func decimalVal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

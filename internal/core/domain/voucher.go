package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
)

// VoucherStatus indicates the lifecycle state of a voucher.
type VoucherStatus string

const (
	StatusDraft     VoucherStatus = "DRAFT"
	StatusPosted    VoucherStatus = "POSTED"
	StatusCancelled VoucherStatus = "CANCELLED"
)

// MinCancelReasonLength is the minimum number of characters a cancellation reason must have.
const MinCancelReasonLength = 10

// ParseVoucherStatus converts a persisted or user supplied string into a VoucherStatus.
func ParseVoucherStatus(s string) (VoucherStatus, error) {
	status := VoucherStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown voucher status %q", apperrors.ErrValidation, s)
	}
	return status, nil
}

// IsValid reports whether s is one of the known statuses.
func (s VoucherStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPosted, StatusCancelled:
		return true
	}
	return false
}

// Editable reports whether content changes (update, delete) are allowed.
func (s VoucherStatus) Editable() bool {
	return s == StatusDraft
}

// Postable reports whether the voucher may be posted.
func (s VoucherStatus) Postable() bool {
	return s == StatusDraft
}

// Cancellable reports whether the voucher may be cancelled.
func (s VoucherStatus) Cancellable() bool {
	return s == StatusDraft || s == StatusPosted
}

// Statuses that allow each lifecycle operation. These are the preconditions
// checked atomically by the store on write.
var (
	EditableStatuses    = []VoucherStatus{StatusDraft}
	PostableStatuses    = []VoucherStatus{StatusDraft}
	CancellableStatuses = []VoucherStatus{StatusDraft, StatusPosted}
)

// VoucherHeader holds the identity, numbering and lifecycle fields shared by every voucher kind.
type VoucherHeader struct {
	ID          string        `json:"id"`
	VoucherNo   string        `json:"voucherNo"`
	VoucherDate time.Time     `json:"voucherDate"`
	Status      VoucherStatus `json:"status"`
	AuditFields
	LifecycleStamps
}

// Header returns the shared header; it lets embedding types satisfy Voucher.
func (h *VoucherHeader) Header() *VoucherHeader {
	return h
}

// MarkPosted moves a Draft voucher to Posted.
func (h *VoucherHeader) MarkPosted(userID string, at time.Time) error {
	if !h.Status.Postable() {
		return fmt.Errorf("%w: cannot post voucher %s in status %s", apperrors.ErrInvalidTransition, h.ID, h.Status)
	}
	h.Status = StatusPosted
	h.PostedAt = &at
	h.PostedBy = userID
	h.UpdatedAt = at
	return nil
}

// MarkCancelled moves a Draft or Posted voucher to Cancelled.
func (h *VoucherHeader) MarkCancelled(userID, reason string, at time.Time) error {
	if err := ValidateCancelReason(reason); err != nil {
		return err
	}
	if !h.Status.Cancellable() {
		return fmt.Errorf("%w: cannot cancel voucher %s in status %s", apperrors.ErrInvalidTransition, h.ID, h.Status)
	}
	h.Status = StatusCancelled
	h.CancelledAt = &at
	h.CancelledBy = userID
	h.CancelReason = strings.TrimSpace(reason)
	h.UpdatedAt = at
	return nil
}

// ValidateCancelReason enforces the minimum reason length, counted in characters.
func ValidateCancelReason(reason string) error {
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < MinCancelReasonLength {
		return apperrors.NewFieldError("reason", fmt.Sprintf("must be at least %d characters", MinCancelReasonLength))
	}
	return nil
}

// Voucher is implemented by every document shape the lifecycle engine manages.
type Voucher interface {
	Header() *VoucherHeader
	// SequencePrefix returns the numbering prefix for the voucher's sub-kind, e.g. "PT".
	SequencePrefix() string
	// Normalize re-sequences lines, fills defaults and missing line ids and recomputes totals.
	Normalize(newID func() string)
	Validate() error
	// Post stamps the posting fields. Kinds may stamp extra fields (cash posting_date).
	Post(userID string, at time.Time) error
}

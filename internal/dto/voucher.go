package dto

import (
	"time"

	"github.com/SscSPs/voucher_management_app/internal/core/domain"
)

// VoucherHeaderResponse holds the identity, status and audit fields common to every voucher response.
type VoucherHeaderResponse struct {
	ID           string               `json:"id"`
	VoucherNo    string               `json:"voucher_no"`
	VoucherDate  time.Time            `json:"voucher_date"`
	Status       domain.VoucherStatus `json:"status"`
	Version      int64                `json:"version"`
	CreatedAt    time.Time            `json:"created_at"`
	CreatedBy    string               `json:"created_by"`
	UpdatedAt    *time.Time           `json:"updated_at,omitempty"`
	PostedAt     *time.Time           `json:"posted_at,omitempty"`
	PostedBy     string               `json:"posted_by,omitempty"`
	CancelledAt  *time.Time           `json:"cancelled_at,omitempty"`
	CancelledBy  string               `json:"cancelled_by,omitempty"`
	CancelReason string               `json:"cancel_reason,omitempty"`
}

func toVoucherHeaderResponse(h domain.VoucherHeader) VoucherHeaderResponse {
	res := VoucherHeaderResponse{
		ID:           h.ID,
		VoucherNo:    h.VoucherNo,
		VoucherDate:  h.VoucherDate,
		Status:       h.Status,
		Version:      h.Version,
		CreatedAt:    h.CreatedAt,
		CreatedBy:    h.CreatedBy,
		PostedAt:     h.PostedAt,
		PostedBy:     h.PostedBy,
		CancelledAt:  h.CancelledAt,
		CancelledBy:  h.CancelledBy,
		CancelReason: h.CancelReason,
	}
	if !h.UpdatedAt.IsZero() {
		updated := h.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}

// StatusCountsResponse tallies vouchers per status.
type StatusCountsResponse struct {
	Draft     int `json:"draft"`
	Posted    int `json:"posted"`
	Cancelled int `json:"cancelled"`
}

// CancelVoucherParams is the query string of the cancel endpoints.
type CancelVoucherParams struct {
	Reason string `form:"reason" binding:"required"`
}

func buildFilter(voucherType, status, warehouseCode, from, to string, limit int) (domain.VoucherFilter, error) {
	filter := domain.VoucherFilter{
		VoucherType:   voucherType,
		WarehouseCode: warehouseCode,
		Limit:         limit,
	}
	if status != "" {
		s, err := domain.ParseVoucherStatus(status)
		if err != nil {
			return domain.VoucherFilter{}, err
		}
		filter.Status = s
	}
	var err error
	if filter.FromDate, err = parseDateBound("from_date", from, false); err != nil {
		return domain.VoucherFilter{}, err
	}
	if filter.ToDate, err = parseDateBound("to_date", to, true); err != nil {
		return domain.VoucherFilter{}, err
	}
	return filter, nil
}

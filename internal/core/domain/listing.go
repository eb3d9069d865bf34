package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// VoucherFilter narrows a voucher listing. Zero values mean "no constraint".
type VoucherFilter struct {
	VoucherType   string
	Status        VoucherStatus
	WarehouseCode string
	// FromDate and ToDate are inclusive bounds on the voucher date.
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
}

// EffectiveLimit clamps Limit to 1..MaxListLimit, defaulting to DefaultListLimit.
func (f VoucherFilter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	}
	return f.Limit
}

// StatusCounts tallies vouchers per lifecycle status.
type StatusCounts struct {
	Draft     int `json:"draft"`
	Posted    int `json:"posted"`
	Cancelled int `json:"cancelled"`
}

// Add counts one voucher in status s.
func (c *StatusCounts) Add(s VoucherStatus) {
	switch s {
	case StatusDraft:
		c.Draft++
	case StatusPosted:
		c.Posted++
	case StatusCancelled:
		c.Cancelled++
	}
}

// CashVoucherStatistics aggregates cash vouchers. Amounts exclude cancelled vouchers.
type CashVoucherStatistics struct {
	TotalVouchers      int             `json:"totalVouchers"`
	ReceiptCount       int             `json:"receiptCount"`
	PaymentCount       int             `json:"paymentCount"`
	TotalReceiptAmount decimal.Decimal `json:"totalReceiptAmount"`
	TotalPaymentAmount decimal.Decimal `json:"totalPaymentAmount"`
	NetCashFlow        decimal.Decimal `json:"netCashFlow"`
	ByStatus           StatusCounts    `json:"byStatus"`
}

// WarehouseVoucherStatistics aggregates warehouse vouchers. Totals exclude cancelled vouchers.
type WarehouseVoucherStatistics struct {
	TotalVouchers int             `json:"totalVouchers"`
	ByStatus      StatusCounts    `json:"byStatus"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

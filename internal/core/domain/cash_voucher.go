package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CashVoucherType discriminates cash receipts (Phiếu thu) from cash payments (Phiếu chi).
type CashVoucherType string

const (
	CashReceipt CashVoucherType = "RECEIPT"
	CashPayment CashVoucherType = "PAYMENT"
)

// ParseCashVoucherType validates a cash voucher type string.
func ParseCashVoucherType(s string) (CashVoucherType, error) {
	t := CashVoucherType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown cash voucher type %q", apperrors.ErrValidation, s)
	}
	return t, nil
}

func (t CashVoucherType) IsValid() bool {
	return t == CashReceipt || t == CashPayment
}

// SequencePrefix returns the numbering prefix: PT for receipts, PC for payments.
func (t CashVoucherType) SequencePrefix() string {
	if t == CashReceipt {
		return "PT"
	}
	return "PC"
}

// PaymentMethod is how the cash moved.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// ParsePaymentMethod validates a payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if m != PaymentCash && m != PaymentBankTransfer {
		return "", fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, s)
	}
	return m, nil
}

// RelatedObjectType is the kind of counterparty on a cash voucher.
type RelatedObjectType string

const (
	RelatedCustomer RelatedObjectType = "CUSTOMER"
	RelatedSupplier RelatedObjectType = "SUPPLIER"
	RelatedEmployee RelatedObjectType = "EMPLOYEE"
	RelatedOther    RelatedObjectType = "OTHER"
)

// ParseRelatedObjectType validates a related object type string.
func ParseRelatedObjectType(s string) (RelatedObjectType, error) {
	switch r := RelatedObjectType(s); r {
	case RelatedCustomer, RelatedSupplier, RelatedEmployee, RelatedOther:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown related object type %q", apperrors.ErrValidation, s)
}

const DefaultCashAccountCode = "1111"

// CashVoucherLine is one itemised row of a cash voucher.
type CashVoucherLine struct {
	ID          string           `json:"id"`
	LineNo      int              `json:"lineNo"`
	Description string           `json:"description"`
	AccountCode string           `json:"accountCode"` // contra account
	AccountName string           `json:"accountName,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxCode     string           `json:"taxCode,omitempty"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	TaxAmount   decimal.Decimal  `json:"taxAmount"`
}

// CashVoucher is a cash receipt or payment voucher.
type CashVoucher struct {
	VoucherHeader
	VoucherType CashVoucherType `json:"voucherType"`
	PostingDate *time.Time      `json:"postingDate,omitempty"`

	RelatedObjectType RelatedObjectType `json:"relatedObjectType"`
	RelatedObjectID   string            `json:"relatedObjectID,omitempty"`
	RelatedObjectCode string            `json:"relatedObjectCode,omitempty"`
	RelatedObjectName string            `json:"relatedObjectName"`
	Address           string            `json:"address,omitempty"`

	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`

	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	CashAccountCode string        `json:"cashAccountCode"`

	Lines []CashVoucherLine `json:"lines"`
	CashTotals
	AmountInWords string `json:"amountInWords"`

	ReceiverName        string     `json:"receiverName,omitempty"`
	ReceiverID          string     `json:"receiverID,omitempty"`
	OriginalVoucherNo   string     `json:"originalVoucherNo,omitempty"`
	OriginalVoucherDate *time.Time `json:"originalVoucherDate,omitempty"`
}

var _ Voucher = (*CashVoucher)(nil)

func (v *CashVoucher) SequencePrefix() string {
	return v.VoucherType.SequencePrefix()
}

// Normalize re-numbers lines from 1, fills defaults and recomputes totals and amount in words.
func (v *CashVoucher) Normalize(newID func() string) {
	for i := range v.Lines {
		v.Lines[i].LineNo = i + 1
		if v.Lines[i].ID == "" {
			v.Lines[i].ID = newID()
		}
	}
	if v.PaymentMethod == "" {
		v.PaymentMethod = PaymentCash
	}
	if v.CashAccountCode == "" {
		v.CashAccountCode = DefaultCashAccountCode
	}
	v.CashTotals = CalculateCashTotals(v.Lines)
	v.AmountInWords = AmountInWords(v.GrandTotal)
}

// Validate checks header and line content.
func (v *CashVoucher) Validate() error {
	if !v.VoucherType.IsValid() {
		return apperrors.NewFieldError("voucher_type", "must be RECEIPT or PAYMENT")
	}
	if v.VoucherDate.IsZero() {
		return apperrors.NewFieldError("voucher_date", "is required")
	}
	if _, err := ParseRelatedObjectType(string(v.RelatedObjectType)); err != nil {
		return apperrors.NewFieldError("related_object_type", "must be CUSTOMER, SUPPLIER, EMPLOYEE or OTHER")
	}
	if strings.TrimSpace(v.RelatedObjectName) == "" {
		return apperrors.NewFieldError("related_object_name", "is required")
	}
	if strings.TrimSpace(v.Reason) == "" {
		return apperrors.NewFieldError("reason", "is required")
	}
	if v.PaymentMethod != "" {
		if _, err := ParsePaymentMethod(string(v.PaymentMethod)); err != nil {
			return apperrors.NewFieldError("payment_method", "must be CASH or BANK_TRANSFER")
		}
	}
	if len(v.Lines) == 0 {
		return apperrors.NewFieldError("lines", "at least one line is required")
	}
	for i, line := range v.Lines {
		if err := line.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (l CashVoucherLine) validate(i int) error {
	field := func(name string) string { return fmt.Sprintf("lines[%d].%s", i, name) }
	if strings.TrimSpace(l.Description) == "" {
		return apperrors.NewFieldError(field("description"), "is required")
	}
	if strings.TrimSpace(l.AccountCode) == "" {
		return apperrors.NewFieldError(field("account_code"), "is required")
	}
	if l.Amount.IsNegative() {
		return apperrors.NewFieldError(field("amount"), "must not be negative")
	}
	if l.TaxAmount.IsNegative() {
		return apperrors.NewFieldError(field("tax_amount"), "must not be negative")
	}
	return nil
}

// Post stamps posting fields including the posting date.
func (v *CashVoucher) Post(userID string, at time.Time) error {
	if err := v.MarkPosted(userID, at); err != nil {
		return err
	}
	v.PostingDate = &at
	return nil
}

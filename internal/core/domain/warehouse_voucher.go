package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// WarehouseVoucherType discriminates goods receipts (Phiếu nhập kho) from goods issues (Phiếu xuất kho).
type WarehouseVoucherType string

const (
	WarehouseReceipt WarehouseVoucherType = "RECEIPT"
	WarehouseIssue   WarehouseVoucherType = "ISSUE"
)

// ParseWarehouseVoucherType validates a warehouse voucher type string.
func ParseWarehouseVoucherType(s string) (WarehouseVoucherType, error) {
	t := WarehouseVoucherType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown warehouse voucher type %q", apperrors.ErrValidation, s)
	}
	return t, nil
}

func (t WarehouseVoucherType) IsValid() bool {
	return t == WarehouseReceipt || t == WarehouseIssue
}

// SequencePrefix returns PNK for receipts and PXK for issues.
func (t WarehouseVoucherType) SequencePrefix() string {
	if t == WarehouseReceipt {
		return "PNK"
	}
	return "PXK"
}

// ReceiptType is the reason goods came into the warehouse.
type ReceiptType string

const (
	ReceiptPurchase      ReceiptType = "PURCHASE"
	ReceiptReturnSale    ReceiptType = "RETURN_SALE"
	ReceiptTransferIn    ReceiptType = "TRANSFER_IN"
	ReceiptProduction    ReceiptType = "PRODUCTION"
	ReceiptInventoryPlus ReceiptType = "INVENTORY_PLUS"
	ReceiptOtherIn       ReceiptType = "OTHER_IN"
)

// ParseReceiptType validates a receipt type string.
func ParseReceiptType(s string) (ReceiptType, error) {
	switch r := ReceiptType(s); r {
	case ReceiptPurchase, ReceiptReturnSale, ReceiptTransferIn, ReceiptProduction, ReceiptInventoryPlus, ReceiptOtherIn:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown receipt type %q", apperrors.ErrValidation, s)
}

// IssueType is the reason goods left the warehouse.
type IssueType string

const (
	IssueSale           IssueType = "SALE"
	IssueReturnPurchase IssueType = "RETURN_PURCHASE"
	IssueTransferOut    IssueType = "TRANSFER_OUT"
	IssueProductionUse  IssueType = "PRODUCTION_USE"
	IssueInventoryMinus IssueType = "INVENTORY_MINUS"
	IssueOtherOut       IssueType = "OTHER_OUT"
)

// ParseIssueType validates an issue type string.
func ParseIssueType(s string) (IssueType, error) {
	switch i := IssueType(s); i {
	case IssueSale, IssueReturnPurchase, IssueTransferOut, IssueProductionUse, IssueInventoryMinus, IssueOtherOut:
		return i, nil
	}
	return "", fmt.Errorf("%w: unknown issue type %q", apperrors.ErrValidation, s)
}

const DefaultInventoryAccount = "156"

// amountTolerance is how far a supplied line amount may drift from quantity × unit price.
var amountTolerance = decimal.NewFromInt(1)

// WarehouseVoucherLine is one product row of a warehouse voucher.
type WarehouseVoucherLine struct {
	ID               string          `json:"id"`
	LineNo           int             `json:"lineNo"`
	ProductID        string          `json:"productID,omitempty"`
	ProductCode      string          `json:"productCode"`
	ProductName      string          `json:"productName"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Amount           decimal.Decimal `json:"amount"`
	InventoryAccount string          `json:"inventoryAccount"`
	ExpenseAccount   string          `json:"expenseAccount,omitempty"`
	WarehouseCode    string          `json:"warehouseCode,omitempty"`
	BatchNo          string          `json:"batchNo,omitempty"`
	ExpiryDate       *time.Time      `json:"expiryDate,omitempty"`
	Note             string          `json:"note,omitempty"`
}

// ExpectedAmount is quantity × unit price rounded to two decimals.
func (l WarehouseVoucherLine) ExpectedAmount() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Round(2)
}

// WarehouseVoucher is a goods receipt or goods issue voucher.
type WarehouseVoucher struct {
	VoucherHeader
	VoucherType WarehouseVoucherType `json:"voucherType"`
	ReceiptType ReceiptType          `json:"receiptType,omitempty"`
	IssueType   IssueType            `json:"issueType,omitempty"`

	PartnerID   string `json:"partnerID,omitempty"`
	PartnerCode string `json:"partnerCode,omitempty"`
	PartnerName string `json:"partnerName,omitempty"`

	RefVoucherNo   string     `json:"refVoucherNo,omitempty"`
	RefVoucherDate *time.Time `json:"refVoucherDate,omitempty"`
	RefVoucherType string     `json:"refVoucherType,omitempty"`

	WarehouseCode string `json:"warehouseCode"`
	WarehouseName string `json:"warehouseName"`
	Keeper        string `json:"keeper,omitempty"`
	Receiver      string `json:"receiver,omitempty"`

	Lines []WarehouseVoucherLine `json:"lines"`
	WarehouseTotals

	DebitAccount  string `json:"debitAccount"`
	CreditAccount string `json:"creditAccount"`

	Description string `json:"description,omitempty"`
	Note        string `json:"note,omitempty"`
}

var _ Voucher = (*WarehouseVoucher)(nil)

func (v *WarehouseVoucher) SequencePrefix() string {
	return v.VoucherType.SequencePrefix()
}

// Normalize re-numbers lines and recomputes totals. Line amounts are kept as given.
func (v *WarehouseVoucher) Normalize(newID func() string) {
	for i := range v.Lines {
		line := &v.Lines[i]
		line.LineNo = i + 1
		if line.ID == "" {
			line.ID = newID()
		}
		if line.InventoryAccount == "" {
			line.InventoryAccount = DefaultInventoryAccount
		}
	}
	v.WarehouseTotals = CalculateWarehouseTotals(v.Lines)
}

// Validate checks header and line content, including the amount reconciliation rule.
func (v *WarehouseVoucher) Validate() error {
	if !v.VoucherType.IsValid() {
		return apperrors.NewFieldError("voucher_type", "must be RECEIPT or ISSUE")
	}
	if v.VoucherDate.IsZero() {
		return apperrors.NewFieldError("voucher_date", "is required")
	}
	if v.ReceiptType != "" {
		if v.VoucherType != WarehouseReceipt {
			return apperrors.NewFieldError("receipt_type", "only allowed on RECEIPT vouchers")
		}
		if _, err := ParseReceiptType(string(v.ReceiptType)); err != nil {
			return apperrors.NewFieldError("receipt_type", "unknown receipt type")
		}
	}
	if v.IssueType != "" {
		if v.VoucherType != WarehouseIssue {
			return apperrors.NewFieldError("issue_type", "only allowed on ISSUE vouchers")
		}
		if _, err := ParseIssueType(string(v.IssueType)); err != nil {
			return apperrors.NewFieldError("issue_type", "unknown issue type")
		}
	}
	if strings.TrimSpace(v.WarehouseCode) == "" {
		return apperrors.NewFieldError("warehouse_code", "is required")
	}
	if strings.TrimSpace(v.WarehouseName) == "" {
		return apperrors.NewFieldError("warehouse_name", "is required")
	}
	if strings.TrimSpace(v.DebitAccount) == "" {
		return apperrors.NewFieldError("debit_account", "is required")
	}
	if strings.TrimSpace(v.CreditAccount) == "" {
		return apperrors.NewFieldError("credit_account", "is required")
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

func (l WarehouseVoucherLine) validate(i int) error {
	field := func(name string) string { return fmt.Sprintf("lines[%d].%s", i, name) }
	if strings.TrimSpace(l.ProductCode) == "" {
		return apperrors.NewFieldError(field("product_code"), "is required")
	}
	if strings.TrimSpace(l.ProductName) == "" {
		return apperrors.NewFieldError(field("product_name"), "is required")
	}
	if strings.TrimSpace(l.Unit) == "" {
		return apperrors.NewFieldError(field("unit"), "is required")
	}
	if !l.Quantity.IsPositive() {
		return apperrors.NewFieldError(field("quantity"), "must be greater than zero")
	}
	if l.UnitPrice.IsNegative() {
		return apperrors.NewFieldError(field("unit_price"), "must not be negative")
	}
	if l.Amount.IsNegative() {
		return apperrors.NewFieldError(field("amount"), "must not be negative")
	}
	if l.Amount.Sub(l.ExpectedAmount()).Abs().GreaterThanOrEqual(amountTolerance) {
		return apperrors.NewFieldError(field("amount"),
			fmt.Sprintf("must equal quantity × unit_price (%s)", l.ExpectedAmount().String()))
	}
	return nil
}

// Post stamps posting fields.
func (v *WarehouseVoucher) Post(userID string, at time.Time) error {
	return v.MarkPosted(userID, at)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection names in the document store.
const (
	CashVoucherCollection      = "cash_vouchers"
	WarehouseVoucherCollection = "warehouse_vouchers"
)

// Top-level field names the store filters and preconditions rely on.
const (
	FieldVoucherType   = "voucher_type"
	FieldVoucherDate   = "voucher_date"
	FieldStatus        = "status"
	FieldVersion       = "version"
	FieldWarehouseCode = "warehouse_code"
)

// AuditFields are the audit columns persisted on every voucher document.
type AuditFields struct {
	Version   int64      `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// VoucherHeader is the persisted form of the fields shared by every voucher kind.
type VoucherHeader struct {
	ID          string    `json:"id"`
	VoucherNo   string    `json:"voucher_no"`
	VoucherDate time.Time `json:"voucher_date"`
	Status      string    `json:"status"`
	AuditFields

	PostedAt     *time.Time `json:"posted_at"`
	PostedBy     *string    `json:"posted_by"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CancelledBy  *string    `json:"cancelled_by"`
	CancelReason *string    `json:"cancel_reason"`
}

// CashVoucherLine is the persisted form of a cash voucher line.
type CashVoucherLine struct {
	ID          string           `json:"id"`
	LineNo      int              `json:"line_no"`
	Description string           `json:"description"`
	AccountCode string           `json:"account_code"`
	AccountName *string          `json:"account_name"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxCode     *string          `json:"tax_code"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	TaxAmount   *decimal.Decimal `json:"tax_amount"`
}

// CashVoucher is the persisted document in the cash_vouchers collection.
type CashVoucher struct {
	VoucherHeader
	VoucherType string     `json:"voucher_type"`
	PostingDate *time.Time `json:"posting_date"`

	RelatedObjectType string  `json:"related_object_type"`
	RelatedObjectID   *string `json:"related_object_id"`
	RelatedObjectCode *string `json:"related_object_code"`
	RelatedObjectName string  `json:"related_object_name"`
	Address           *string `json:"address"`

	Reason      string  `json:"reason"`
	Description *string `json:"description"`

	PaymentMethod   string `json:"payment_method"`
	CashAccountCode string `json:"cash_account_code"`

	Lines          []CashVoucherLine `json:"lines"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	TotalTaxAmount decimal.Decimal   `json:"total_tax_amount"`
	GrandTotal     decimal.Decimal   `json:"grand_total"`
	AmountInWords  *string           `json:"amount_in_words"`

	ReceiverName        *string    `json:"receiver_name"`
	ReceiverID          *string    `json:"receiver_id"`
	OriginalVoucherNo   *string    `json:"original_voucher_no"`
	OriginalVoucherDate *time.Time `json:"original_voucher_date"`
}

// WarehouseVoucherLine is the persisted form of a warehouse voucher line.
type WarehouseVoucherLine struct {
	ID               string          `json:"id"`
	LineNo           int             `json:"line_no"`
	ProductID        *string         `json:"product_id"`
	ProductCode      string          `json:"product_code"`
	ProductName      string          `json:"product_name"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Amount           decimal.Decimal `json:"amount"`
	InventoryAccount string          `json:"inventory_account"`
	ExpenseAccount   *string         `json:"expense_account"`
	WarehouseCode    *string         `json:"warehouse_code"`
	BatchNo          *string         `json:"batch_no"`
	ExpiryDate       *time.Time      `json:"expiry_date"`
	Note             *string         `json:"note"`
}

// WarehouseVoucher is the persisted document in the warehouse_vouchers collection.
type WarehouseVoucher struct {
	VoucherHeader
	VoucherType string  `json:"voucher_type"`
	ReceiptType *string `json:"receipt_type"`
	IssueType   *string `json:"issue_type"`

	PartnerID   *string `json:"partner_id"`
	PartnerCode *string `json:"partner_code"`
	PartnerName *string `json:"partner_name"`

	RefVoucherNo   *string    `json:"ref_voucher_no"`
	RefVoucherDate *time.Time `json:"ref_voucher_date"`
	RefVoucherType *string    `json:"ref_voucher_type"`

	WarehouseCode string  `json:"warehouse_code"`
	WarehouseName string  `json:"warehouse_name"`
	Keeper        *string `json:"keeper"`
	Receiver      *string `json:"receiver"`

	Lines         []WarehouseVoucherLine `json:"lines"`
	TotalQuantity decimal.Decimal        `json:"total_quantity"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`

	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`

	Description *string `json:"description"`
	Note        *string `json:"note"`
}

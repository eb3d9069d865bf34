package dto

import (
	"time"

	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WarehouseVoucherLineRequest is one product line as sent by clients. Amount may be
// omitted, in which case it is derived from quantity and unit price.
type WarehouseVoucherLineRequest struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	ProductCode      string           `json:"product_code" binding:"required"`
	ProductName      string           `json:"product_name" binding:"required"`
	Unit             string           `json:"unit" binding:"required"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	Amount           *decimal.Decimal `json:"amount"`
	InventoryAccount string           `json:"inventory_account"`
	ExpenseAccount   string           `json:"expense_account"`
	WarehouseCode    string           `json:"warehouse_code"`
	BatchNo          string           `json:"batch_no"`
	ExpiryDate       *Date            `json:"expiry_date"`
	Note             string           `json:"note"`
}

// CreateWarehouseVoucherRequest defines the data needed to create a goods receipt or issue.
type CreateWarehouseVoucherRequest struct {
	VoucherType domain.WarehouseVoucherType `json:"voucher_type" binding:"required,oneof=RECEIPT ISSUE"`
	ReceiptType domain.ReceiptType          `json:"receipt_type" binding:"omitempty,oneof=PURCHASE RETURN_SALE TRANSFER_IN PRODUCTION INVENTORY_PLUS OTHER_IN"`
	IssueType   domain.IssueType            `json:"issue_type" binding:"omitempty,oneof=SALE RETURN_PURCHASE TRANSFER_OUT PRODUCTION_USE INVENTORY_MINUS OTHER_OUT"`
	VoucherDate *Date                       `json:"voucher_date" binding:"required"`

	PartnerID   string `json:"partner_id"`
	PartnerCode string `json:"partner_code"`
	PartnerName string `json:"partner_name"`

	RefVoucherNo   string `json:"ref_voucher_no"`
	RefVoucherDate *Date  `json:"ref_voucher_date"`
	RefVoucherType string `json:"ref_voucher_type"`

	WarehouseCode string `json:"warehouse_code" binding:"required"`
	WarehouseName string `json:"warehouse_name" binding:"required"`
	Keeper        string `json:"keeper"`
	Receiver      string `json:"receiver"`

	Lines []WarehouseVoucherLineRequest `json:"lines" binding:"required,min=1,dive"`

	DebitAccount  string `json:"debit_account" binding:"required"`
	CreditAccount string `json:"credit_account" binding:"required"`
	Description   string `json:"description"`
	Note          string `json:"note"`
}

// UpdateWarehouseVoucherRequest carries the fields a draft warehouse voucher may change.
type UpdateWarehouseVoucherRequest struct {
	VoucherDate   *Date                         `json:"voucher_date"`
	PartnerName   *string                       `json:"partner_name"`
	WarehouseCode *string                       `json:"warehouse_code"`
	WarehouseName *string                       `json:"warehouse_name"`
	Keeper        *string                       `json:"keeper"`
	Receiver      *string                       `json:"receiver"`
	Lines         []WarehouseVoucherLineRequest `json:"lines" binding:"omitempty,dive"`
	Description   *string                       `json:"description"`
	Note          *string                       `json:"note"`
}

// ToDomainWarehouseLines converts request lines. An omitted amount is derived as quantity × unit price;
// a supplied one, zero included, is kept for validation.
func ToDomainWarehouseLines(reqs []WarehouseVoucherLineRequest) []domain.WarehouseVoucherLine {
	lines := make([]domain.WarehouseVoucherLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.WarehouseVoucherLine{
			ID:               r.ID,
			ProductID:        r.ProductID,
			ProductCode:      r.ProductCode,
			ProductName:      r.ProductName,
			Unit:             r.Unit,
			Quantity:         r.Quantity,
			UnitPrice:        r.UnitPrice,
			InventoryAccount: r.InventoryAccount,
			ExpenseAccount:   r.ExpenseAccount,
			WarehouseCode:    r.WarehouseCode,
			BatchNo:          r.BatchNo,
			ExpiryDate:       r.ExpiryDate.TimePtr(),
			Note:             r.Note,
		}
		if r.Amount != nil {
			lines[i].Amount = *r.Amount
		} else {
			lines[i].Amount = lines[i].ExpectedAmount()
		}
	}
	return lines
}

// WarehouseVoucherLineResponse mirrors domain.WarehouseVoucherLine.
type WarehouseVoucherLineResponse struct {
	ID               string          `json:"id"`
	LineNo           int             `json:"line_no"`
	ProductID        string          `json:"product_id,omitempty"`
	ProductCode      string          `json:"product_code"`
	ProductName      string          `json:"product_name"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Amount           decimal.Decimal `json:"amount"`
	InventoryAccount string          `json:"inventory_account"`
	ExpenseAccount   string          `json:"expense_account,omitempty"`
	WarehouseCode    string          `json:"warehouse_code,omitempty"`
	BatchNo          string          `json:"batch_no,omitempty"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
	Note             string          `json:"note,omitempty"`
}

// WarehouseVoucherResponse defines the data returned for a warehouse voucher.
type WarehouseVoucherResponse struct {
	VoucherHeaderResponse
	VoucherType domain.WarehouseVoucherType `json:"voucher_type"`
	ReceiptType domain.ReceiptType          `json:"receipt_type,omitempty"`
	IssueType   domain.IssueType            `json:"issue_type,omitempty"`

	PartnerID   string `json:"partner_id,omitempty"`
	PartnerCode string `json:"partner_code,omitempty"`
	PartnerName string `json:"partner_name,omitempty"`

	RefVoucherNo   string     `json:"ref_voucher_no,omitempty"`
	RefVoucherDate *time.Time `json:"ref_voucher_date,omitempty"`
	RefVoucherType string     `json:"ref_voucher_type,omitempty"`

	WarehouseCode string `json:"warehouse_code"`
	WarehouseName string `json:"warehouse_name"`
	Keeper        string `json:"keeper,omitempty"`
	Receiver      string `json:"receiver,omitempty"`

	Lines         []WarehouseVoucherLineResponse `json:"lines"`
	TotalQuantity decimal.Decimal                `json:"total_quantity"`
	TotalAmount   decimal.Decimal                `json:"total_amount"`

	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
	Description   string `json:"description,omitempty"`
	Note          string `json:"note,omitempty"`
}

// ToWarehouseVoucherResponse converts a domain.WarehouseVoucher to its response DTO.
func ToWarehouseVoucherResponse(v *domain.WarehouseVoucher) WarehouseVoucherResponse {
	lines := make([]WarehouseVoucherLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = WarehouseVoucherLineResponse{
			ID:               l.ID,
			LineNo:           l.LineNo,
			ProductID:        l.ProductID,
			ProductCode:      l.ProductCode,
			ProductName:      l.ProductName,
			Unit:             l.Unit,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			Amount:           l.Amount,
			InventoryAccount: l.InventoryAccount,
			ExpenseAccount:   l.ExpenseAccount,
			WarehouseCode:    l.WarehouseCode,
			BatchNo:          l.BatchNo,
			ExpiryDate:       l.ExpiryDate,
			Note:             l.Note,
		}
	}
	return WarehouseVoucherResponse{
		VoucherHeaderResponse: toVoucherHeaderResponse(v.VoucherHeader),
		VoucherType:           v.VoucherType,
		ReceiptType:           v.ReceiptType,
		IssueType:             v.IssueType,
		PartnerID:             v.PartnerID,
		PartnerCode:           v.PartnerCode,
		PartnerName:           v.PartnerName,
		RefVoucherNo:          v.RefVoucherNo,
		RefVoucherDate:        v.RefVoucherDate,
		RefVoucherType:        v.RefVoucherType,
		WarehouseCode:         v.WarehouseCode,
		WarehouseName:         v.WarehouseName,
		Keeper:                v.Keeper,
		Receiver:              v.Receiver,
		Lines:                 lines,
		TotalQuantity:         v.TotalQuantity,
		TotalAmount:           v.TotalAmount,
		DebitAccount:          v.DebitAccount,
		CreditAccount:         v.CreditAccount,
		Description:           v.Description,
		Note:                  v.Note,
	}
}

// ToListWarehouseVoucherResponse converts a slice of domain.WarehouseVoucher to response DTOs.
func ToListWarehouseVoucherResponse(vouchers []domain.WarehouseVoucher) []WarehouseVoucherResponse {
	res := make([]WarehouseVoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToWarehouseVoucherResponse(&vouchers[i])
	}
	return res
}

// ListWarehouseVouchersParams defines query parameters for listing warehouse vouchers.
type ListWarehouseVouchersParams struct {
	VoucherType   string `form:"voucher_type" binding:"omitempty,oneof=RECEIPT ISSUE"`
	Status        string `form:"status" binding:"omitempty,oneof=DRAFT POSTED CANCELLED"`
	WarehouseCode string `form:"warehouse_code"`
	FromDate      string `form:"from_date"`
	ToDate        string `form:"to_date"`
	Limit         int    `form:"limit,default=100" binding:"min=1,max=500"`
}

// Filter converts the query parameters into a listing filter.
func (p ListWarehouseVouchersParams) Filter() (domain.VoucherFilter, error) {
	return buildFilter(p.VoucherType, p.Status, p.WarehouseCode, p.FromDate, p.ToDate, p.Limit)
}

// WarehouseStatisticsParams defines query parameters for warehouse voucher statistics.
type WarehouseStatisticsParams struct {
	VoucherType string `form:"voucher_type" binding:"omitempty,oneof=RECEIPT ISSUE"`
	FromDate    string `form:"from_date"`
	ToDate      string `form:"to_date"`
}

// Filter converts the query parameters into a statistics filter.
func (p WarehouseStatisticsParams) Filter() (domain.VoucherFilter, error) {
	return buildFilter(p.VoucherType, "", "", p.FromDate, p.ToDate, 0)
}

// WarehouseStatisticsResponse is the aggregate returned by the warehouse statistics endpoint.
type WarehouseStatisticsResponse struct {
	TotalVouchers  int             `json:"total_vouchers"`
	DraftCount     int             `json:"draft_count"`
	PostedCount    int             `json:"posted_count"`
	CancelledCount int             `json:"cancelled_count"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// ToWarehouseStatisticsResponse converts domain statistics to the response DTO.
func ToWarehouseStatisticsResponse(s *domain.WarehouseVoucherStatistics) WarehouseStatisticsResponse {
	return WarehouseStatisticsResponse{
		TotalVouchers:  s.TotalVouchers,
		DraftCount:     s.ByStatus.Draft,
		PostedCount:    s.ByStatus.Posted,
		CancelledCount: s.ByStatus.Cancelled,
		TotalQuantity:  s.TotalQuantity,
		TotalAmount:    s.TotalAmount,
	}
}

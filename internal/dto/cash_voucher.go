package dto

import (
	"time"

	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashVoucherLineRequest is one line of a cash voucher as sent by clients.
// Line numbers are assigned by the server from the order of the list.
type CashVoucherLineRequest struct {
	ID          string           `json:"id"`
	Description string           `json:"description" binding:"required"`
	AccountCode string           `json:"account_code" binding:"required"`
	AccountName string           `json:"account_name"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxCode     string           `json:"tax_code"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	TaxAmount   *decimal.Decimal `json:"tax_amount"`
}

// CreateCashVoucherRequest defines the data needed to create a cash receipt or payment.
type CreateCashVoucherRequest struct {
	VoucherType       domain.CashVoucherType   `json:"voucher_type" binding:"required,oneof=RECEIPT PAYMENT"`
	VoucherDate       *Date                    `json:"voucher_date" binding:"required"`
	RelatedObjectType domain.RelatedObjectType `json:"related_object_type" binding:"required,oneof=CUSTOMER SUPPLIER EMPLOYEE OTHER"`
	RelatedObjectID   string                   `json:"related_object_id"`
	RelatedObjectCode string                   `json:"related_object_code"`
	RelatedObjectName string                   `json:"related_object_name" binding:"required"`
	Address           string                   `json:"address"`
	Reason            string                   `json:"reason" binding:"required"`
	Description       string                   `json:"description"`
	PaymentMethod     domain.PaymentMethod     `json:"payment_method" binding:"omitempty,oneof=CASH BANK_TRANSFER"`
	CashAccountCode   string                   `json:"cash_account_code"`
	Lines             []CashVoucherLineRequest `json:"lines" binding:"required,min=1,dive"`

	ReceiverName        string `json:"receiver_name"`
	ReceiverID          string `json:"receiver_id"`
	OriginalVoucherNo   string `json:"original_voucher_no"`
	OriginalVoucherDate *Date  `json:"original_voucher_date"`
}

// UpdateCashVoucherRequest carries the fields a draft cash voucher may change.
// Nil fields are left untouched; a non-nil Lines replaces every line.
type UpdateCashVoucherRequest struct {
	VoucherDate       *Date                    `json:"voucher_date"`
	RelatedObjectName *string                  `json:"related_object_name"`
	Address           *string                  `json:"address"`
	Reason            *string                  `json:"reason"`
	Description       *string                  `json:"description"`
	PaymentMethod     *domain.PaymentMethod    `json:"payment_method" binding:"omitempty,oneof=CASH BANK_TRANSFER"`
	CashAccountCode   *string                  `json:"cash_account_code"`
	Lines             []CashVoucherLineRequest `json:"lines" binding:"omitempty,dive"`
	ReceiverName      *string                  `json:"receiver_name"`
	ReceiverID        *string                  `json:"receiver_id"`
}

// ToDomainCashLines converts request lines; numbering and totals are left to the domain.
func ToDomainCashLines(reqs []CashVoucherLineRequest) []domain.CashVoucherLine {
	lines := make([]domain.CashVoucherLine, len(reqs))
	for i, r := range reqs {
		taxAmount := decimal.Zero
		if r.TaxAmount != nil {
			taxAmount = *r.TaxAmount
		}
		lines[i] = domain.CashVoucherLine{
			ID:          r.ID,
			Description: r.Description,
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			Amount:      r.Amount,
			TaxCode:     r.TaxCode,
			TaxRate:     r.TaxRate,
			TaxAmount:   taxAmount,
		}
	}
	return lines
}

// CashVoucherLineResponse mirrors domain.CashVoucherLine.
type CashVoucherLineResponse struct {
	ID          string           `json:"id"`
	LineNo      int              `json:"line_no"`
	Description string           `json:"description"`
	AccountCode string           `json:"account_code"`
	AccountName string           `json:"account_name,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxCode     string           `json:"tax_code,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount   decimal.Decimal  `json:"tax_amount"`
}

// CashVoucherResponse defines the data returned for a cash voucher.
type CashVoucherResponse struct {
	VoucherHeaderResponse
	VoucherType       domain.CashVoucherType   `json:"voucher_type"`
	PostingDate       *time.Time               `json:"posting_date,omitempty"`
	RelatedObjectType domain.RelatedObjectType `json:"related_object_type"`
	RelatedObjectID   string                   `json:"related_object_id,omitempty"`
	RelatedObjectCode string                   `json:"related_object_code,omitempty"`
	RelatedObjectName string                   `json:"related_object_name"`
	Address           string                   `json:"address,omitempty"`
	Reason            string                   `json:"reason"`
	Description       string                   `json:"description,omitempty"`
	PaymentMethod     domain.PaymentMethod     `json:"payment_method"`
	CashAccountCode   string                   `json:"cash_account_code"`

	Lines          []CashVoucherLineResponse `json:"lines"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	TotalTaxAmount decimal.Decimal           `json:"total_tax_amount"`
	GrandTotal     decimal.Decimal           `json:"grand_total"`
	AmountInWords  string                    `json:"amount_in_words"`

	ReceiverName        string     `json:"receiver_name,omitempty"`
	ReceiverID          string     `json:"receiver_id,omitempty"`
	OriginalVoucherNo   string     `json:"original_voucher_no,omitempty"`
	OriginalVoucherDate *time.Time `json:"original_voucher_date,omitempty"`
}

// ToCashVoucherResponse converts a domain.CashVoucher to its response DTO.
func ToCashVoucherResponse(v *domain.CashVoucher) CashVoucherResponse {
	lines := make([]CashVoucherLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CashVoucherLineResponse{
			ID:          l.ID,
			LineNo:      l.LineNo,
			Description: l.Description,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Amount:      l.Amount,
			TaxCode:     l.TaxCode,
			TaxRate:     l.TaxRate,
			TaxAmount:   l.TaxAmount,
		}
	}
	return CashVoucherResponse{
		VoucherHeaderResponse: toVoucherHeaderResponse(v.VoucherHeader),
		VoucherType:           v.VoucherType,
		PostingDate:           v.PostingDate,
		RelatedObjectType:     v.RelatedObjectType,
		RelatedObjectID:       v.RelatedObjectID,
		RelatedObjectCode:     v.RelatedObjectCode,
		RelatedObjectName:     v.RelatedObjectName,
		Address:               v.Address,
		Reason:                v.Reason,
		Description:           v.Description,
		PaymentMethod:         v.PaymentMethod,
		CashAccountCode:       v.CashAccountCode,
		Lines:                 lines,
		TotalAmount:           v.TotalAmount,
		TotalTaxAmount:        v.TotalTaxAmount,
		GrandTotal:            v.GrandTotal,
		AmountInWords:         v.AmountInWords,
		ReceiverName:          v.ReceiverName,
		ReceiverID:            v.ReceiverID,
		OriginalVoucherNo:     v.OriginalVoucherNo,
		OriginalVoucherDate:   v.OriginalVoucherDate,
	}
}

// ToListCashVoucherResponse converts a slice of domain.CashVoucher to response DTOs.
func ToListCashVoucherResponse(vouchers []domain.CashVoucher) []CashVoucherResponse {
	res := make([]CashVoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToCashVoucherResponse(&vouchers[i])
	}
	return res
}

// ListCashVouchersParams defines query parameters for listing cash vouchers.
type ListCashVouchersParams struct {
	VoucherType string `form:"voucher_type" binding:"omitempty,oneof=RECEIPT PAYMENT"`
	Status      string `form:"status" binding:"omitempty,oneof=DRAFT POSTED CANCELLED"`
	FromDate    string `form:"from_date"`
	ToDate      string `form:"to_date"`
	Limit       int    `form:"limit,default=100" binding:"min=1,max=500"`
}

// Filter converts the query parameters into a listing filter.
func (p ListCashVouchersParams) Filter() (domain.VoucherFilter, error) {
	return buildFilter(p.VoucherType, p.Status, "", p.FromDate, p.ToDate, p.Limit)
}

// CashStatisticsParams defines query parameters for cash voucher statistics.
type CashStatisticsParams struct {
	VoucherType string `form:"voucher_type" binding:"omitempty,oneof=RECEIPT PAYMENT"`
	FromDate    string `form:"from_date"`
	ToDate      string `form:"to_date"`
}

// Filter converts the query parameters into a statistics filter.
func (p CashStatisticsParams) Filter() (domain.VoucherFilter, error) {
	return buildFilter(p.VoucherType, "", "", p.FromDate, p.ToDate, 0)
}

// CashStatisticsResponse is the aggregate returned by the cash statistics endpoint.
type CashStatisticsResponse struct {
	TotalVouchers      int                  `json:"total_vouchers"`
	ReceiptCount       int                  `json:"receipt_count"`
	PaymentCount       int                  `json:"payment_count"`
	TotalReceiptAmount decimal.Decimal      `json:"total_receipt_amount"`
	TotalPaymentAmount decimal.Decimal      `json:"total_payment_amount"`
	NetCashFlow        decimal.Decimal      `json:"net_cash_flow"`
	ByStatus           StatusCountsResponse `json:"by_status"`
}

// ToCashStatisticsResponse converts domain statistics to the response DTO.
func ToCashStatisticsResponse(s *domain.CashVoucherStatistics) CashStatisticsResponse {
	return CashStatisticsResponse{
		TotalVouchers:      s.TotalVouchers,
		ReceiptCount:       s.ReceiptCount,
		PaymentCount:       s.PaymentCount,
		TotalReceiptAmount: s.TotalReceiptAmount,
		TotalPaymentAmount: s.TotalPaymentAmount,
		NetCashFlow:        s.NetCashFlow,
		ByStatus:           StatusCountsResponse(s.ByStatus),
	}
}

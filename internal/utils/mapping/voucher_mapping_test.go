package mapping_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/SscSPs/voucher_management_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCashVoucher() *domain.CashVoucher {
	created := time.Date(2025, 3, 15, 8, 30, 0, 0, time.UTC)
	return &domain.CashVoucher{
		VoucherHeader: domain.VoucherHeader{
			ID:          "c-1",
			VoucherNo:   "PT202500001",
			VoucherDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusDraft,
			AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "admin", UpdatedAt: created, Version: 1},
		},
		VoucherType:       domain.CashReceipt,
		RelatedObjectType: domain.RelatedCustomer,
		RelatedObjectName: "Công ty ABC",
		Reason:            "Thu tiền hàng",
		PaymentMethod:     domain.PaymentCash,
		CashAccountCode:   "1111",
		Lines: []domain.CashVoucherLine{
			{ID: "l-1", LineNo: 1, Description: "Tiền hàng", AccountCode: "131", Amount: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(10)},
		},
		CashTotals:    domain.CashTotals{TotalAmount: decimal.NewFromInt(100), TotalTaxAmount: decimal.NewFromInt(10), GrandTotal: decimal.NewFromInt(110)},
		AmountInWords: "Một trăm mười đồng",
	}
}

func TestEncodeCashVoucher_UsesStoredFieldNames(t *testing.T) {
	data, err := mapping.EncodeCashVoucher(sampleCashVoucher())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "PT202500001", raw["voucher_no"])
	assert.Equal(t, "RECEIPT", raw["voucher_type"])
	assert.Equal(t, "DRAFT", raw["status"])
	assert.Equal(t, "CUSTOMER", raw["related_object_type"])
	assert.EqualValues(t, 1, raw["version"])
	assert.Nil(t, raw["posted_at"])
	assert.Nil(t, raw["address"])
	lines, ok := raw["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, "131", lines[0].(map[string]any)["account_code"])
}

func TestDecodeCashVoucher_RoundTrip(t *testing.T) {
	original := sampleCashVoucher()
	data, err := mapping.EncodeCashVoucher(original)
	require.NoError(t, err)

	decoded, err := mapping.DecodeCashVoucher(data)
	require.NoError(t, err)

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Status, decoded.Status)
	assert.Equal(t, original.VoucherType, decoded.VoucherType)
	assert.True(t, original.VoucherDate.Equal(decoded.VoucherDate))
	assert.True(t, original.GrandTotal.Equal(decoded.GrandTotal))
	assert.True(t, original.Lines[0].TaxAmount.Equal(decoded.Lines[0].TaxAmount))
	assert.Equal(t, original.AmountInWords, decoded.AmountInWords)
}

func TestDecodeCashVoucher_LegacyNumbersAndNullTax(t *testing.T) {
	doc := `{
		"id": "c-9", "voucher_no": "PC202400003", "voucher_date": "2024-12-01T00:00:00Z",
		"status": "POSTED", "created_at": "2024-12-01T00:00:00Z", "created_by": "admin",
		"voucher_type": "PAYMENT", "related_object_type": "SUPPLIER", "related_object_name": "NCC",
		"reason": "Trả tiền", "payment_method": "BANK_TRANSFER", "cash_account_code": "1121",
		"lines": [{"id": "x", "line_no": 1, "description": "d", "account_code": "331", "amount": 250.5, "tax_amount": null}],
		"total_amount": 250.5, "total_tax_amount": 0, "grand_total": 250.5
	}`

	v, err := mapping.DecodeCashVoucher([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPosted, v.Status)
	assert.Equal(t, domain.PaymentBankTransfer, v.PaymentMethod)
	assert.True(t, decimal.RequireFromString("250.5").Equal(v.GrandTotal))
	assert.True(t, v.Lines[0].TaxAmount.IsZero())
	assert.Zero(t, v.Version)
}

func TestDecodeCashVoucher_UnknownStatusFails(t *testing.T) {
	doc := `{"id": "c-2", "status": "ARCHIVED", "voucher_type": "RECEIPT", "related_object_type": "OTHER"}`

	v, err := mapping.DecodeCashVoucher([]byte(doc))

	require.Error(t, err)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.Contains(t, err.Error(), "c-2")
}

func TestDecodeWarehouseVoucher_UnknownTypeFails(t *testing.T) {
	doc := `{"id": "w-2", "status": "DRAFT", "voucher_type": "TRANSFER"}`

	_, err := mapping.DecodeWarehouseVoucher([]byte(doc))

	assert.ErrorIs(t, err, apperrors.ErrStore)
}

func TestWarehouseVoucher_RoundTrip(t *testing.T) {
	expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	original := &domain.WarehouseVoucher{
		VoucherHeader: domain.VoucherHeader{
			ID: "w-1", VoucherNo: "PXK202500007", Status: domain.StatusCancelled,
			VoucherDate:     time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
			LifecycleStamps: domain.LifecycleStamps{CancelReason: "Xuất nhầm kho hàng", CancelledBy: "u1"},
		},
		VoucherType:   domain.WarehouseIssue,
		IssueType:     domain.IssueSale,
		WarehouseCode: "KHO01",
		WarehouseName: "Kho chính",
		DebitAccount:  "632",
		CreditAccount: "156",
		Lines: []domain.WarehouseVoucherLine{{
			ID: "l-1", LineNo: 1, ProductCode: "SP01", ProductName: "Bút", Unit: "cái",
			Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5), Amount: decimal.NewFromInt(10),
			InventoryAccount: "156", ExpiryDate: &expiry,
		}},
		WarehouseTotals: domain.WarehouseTotals{TotalQuantity: decimal.NewFromInt(2), TotalAmount: decimal.NewFromInt(10)},
	}

	data, err := mapping.EncodeWarehouseVoucher(original)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw["receipt_type"])
	assert.Equal(t, "SALE", raw["issue_type"])

	decoded, err := mapping.DecodeWarehouseVoucher(data)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueSale, decoded.IssueType)
	assert.Empty(t, decoded.ReceiptType)
	assert.Equal(t, "Xuất nhầm kho hàng", decoded.CancelReason)
	require.NotNil(t, decoded.Lines[0].ExpiryDate)
	assert.True(t, expiry.Equal(*decoded.Lines[0].ExpiryDate))
	assert.True(t, decimal.NewFromInt(10).Equal(decoded.TotalAmount))
}

package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/SscSPs/voucher_management_app/internal/models"
)

// ToModelCashVoucher converts a domain CashVoucher to the persisted document.
func ToModelCashVoucher(d *domain.CashVoucher) models.CashVoucher {
	lines := make([]models.CashVoucherLine, len(d.Lines))
	for i, l := range d.Lines {
		taxAmount := l.TaxAmount
		lines[i] = models.CashVoucherLine{
			ID:          l.ID,
			LineNo:      l.LineNo,
			Description: l.Description,
			AccountCode: l.AccountCode,
			AccountName: strPtr(l.AccountName),
			Amount:      l.Amount,
			TaxCode:     strPtr(l.TaxCode),
			TaxRate:     l.TaxRate,
			TaxAmount:   &taxAmount,
		}
	}
	return models.CashVoucher{
		VoucherHeader:       ToModelVoucherHeader(d.VoucherHeader),
		VoucherType:         string(d.VoucherType),
		PostingDate:         utcPtr(d.PostingDate),
		RelatedObjectType:   string(d.RelatedObjectType),
		RelatedObjectID:     strPtr(d.RelatedObjectID),
		RelatedObjectCode:   strPtr(d.RelatedObjectCode),
		RelatedObjectName:   d.RelatedObjectName,
		Address:             strPtr(d.Address),
		Reason:              d.Reason,
		Description:         strPtr(d.Description),
		PaymentMethod:       string(d.PaymentMethod),
		CashAccountCode:     d.CashAccountCode,
		Lines:               lines,
		TotalAmount:         d.TotalAmount,
		TotalTaxAmount:      d.TotalTaxAmount,
		GrandTotal:          d.GrandTotal,
		AmountInWords:       strPtr(d.AmountInWords),
		ReceiverName:        strPtr(d.ReceiverName),
		ReceiverID:          strPtr(d.ReceiverID),
		OriginalVoucherNo:   strPtr(d.OriginalVoucherNo),
		OriginalVoucherDate: utcPtr(d.OriginalVoucherDate),
	}
}

// ToDomainCashVoucher converts a persisted document, validating every enum.
func ToDomainCashVoucher(m models.CashVoucher) (*domain.CashVoucher, error) {
	header, err := ToDomainVoucherHeader(m.VoucherHeader)
	if err != nil {
		return nil, err
	}
	voucherType, err := domain.ParseCashVoucherType(m.VoucherType)
	if err != nil {
		return nil, corrupt(m.ID, err)
	}
	relatedType, err := domain.ParseRelatedObjectType(m.RelatedObjectType)
	if err != nil {
		return nil, corrupt(m.ID, err)
	}
	paymentMethod := domain.PaymentCash
	if m.PaymentMethod != "" {
		if paymentMethod, err = domain.ParsePaymentMethod(m.PaymentMethod); err != nil {
			return nil, corrupt(m.ID, err)
		}
	}

	lines := make([]domain.CashVoucherLine, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = domain.CashVoucherLine{
			ID:          l.ID,
			LineNo:      l.LineNo,
			Description: l.Description,
			AccountCode: l.AccountCode,
			AccountName: strVal(l.AccountName),
			Amount:      l.Amount,
			TaxCode:     strVal(l.TaxCode),
			TaxRate:     l.TaxRate,
			TaxAmount:   decimalVal(l.TaxAmount),
		}
	}

	return &domain.CashVoucher{
		VoucherHeader:     header,
		VoucherType:       voucherType,
		PostingDate:       m.PostingDate,
		RelatedObjectType: relatedType,
		RelatedObjectID:   strVal(m.RelatedObjectID),
		RelatedObjectCode: strVal(m.RelatedObjectCode),
		RelatedObjectName: m.RelatedObjectName,
		Address:           strVal(m.Address),
		Reason:            m.Reason,
		Description:       strVal(m.Description),
		PaymentMethod:     paymentMethod,
		CashAccountCode:   m.CashAccountCode,
		Lines:             lines,
		CashTotals: domain.CashTotals{
			TotalAmount:    m.TotalAmount,
			TotalTaxAmount: m.TotalTaxAmount,
			GrandTotal:     m.GrandTotal,
		},
		AmountInWords:       strVal(m.AmountInWords),
		ReceiverName:        strVal(m.ReceiverName),
		ReceiverID:          strVal(m.ReceiverID),
		OriginalVoucherNo:   strVal(m.OriginalVoucherNo),
		OriginalVoucherDate: m.OriginalVoucherDate,
	}, nil
}

// EncodeCashVoucher serialises a cash voucher into its stored JSON document.
func EncodeCashVoucher(d *domain.CashVoucher) ([]byte, error) {
	data, err := json.Marshal(ToModelCashVoucher(d))
	if err != nil {
		return nil, fmt.Errorf("failed to encode cash voucher %s: %w", d.ID, err)
	}
	return data, nil
}

// DecodeCashVoucher parses a stored JSON document into a cash voucher.
func DecodeCashVoucher(data []byte) (*domain.CashVoucher, error) {
	var m models.CashVoucher
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, corrupt(m.ID, err)
	}
	return ToDomainCashVoucher(m)
}

package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/SscSPs/voucher_management_app/internal/models"
)

// ToModelWarehouseVoucher converts a domain WarehouseVoucher to the persisted document.
func ToModelWarehouseVoucher(d *domain.WarehouseVoucher) models.WarehouseVoucher {
	lines := make([]models.WarehouseVoucherLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.WarehouseVoucherLine{
			ID:               l.ID,
			LineNo:           l.LineNo,
			ProductID:        strPtr(l.ProductID),
			ProductCode:      l.ProductCode,
			ProductName:      l.ProductName,
			Unit:             l.Unit,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			Amount:           l.Amount,
			InventoryAccount: l.InventoryAccount,
			ExpenseAccount:   strPtr(l.ExpenseAccount),
			WarehouseCode:    strPtr(l.WarehouseCode),
			BatchNo:          strPtr(l.BatchNo),
			ExpiryDate:       utcPtr(l.ExpiryDate),
			Note:             strPtr(l.Note),
		}
	}
	return models.WarehouseVoucher{
		VoucherHeader:  ToModelVoucherHeader(d.VoucherHeader),
		VoucherType:    string(d.VoucherType),
		ReceiptType:    strPtr(string(d.ReceiptType)),
		IssueType:      strPtr(string(d.IssueType)),
		PartnerID:      strPtr(d.PartnerID),
		PartnerCode:    strPtr(d.PartnerCode),
		PartnerName:    strPtr(d.PartnerName),
		RefVoucherNo:   strPtr(d.RefVoucherNo),
		RefVoucherDate: utcPtr(d.RefVoucherDate),
		RefVoucherType: strPtr(d.RefVoucherType),
		WarehouseCode:  d.WarehouseCode,
		WarehouseName:  d.WarehouseName,
		Keeper:         strPtr(d.Keeper),
		Receiver:       strPtr(d.Receiver),
		Lines:          lines,
		TotalQuantity:  d.TotalQuantity,
		TotalAmount:    d.TotalAmount,
		DebitAccount:   d.DebitAccount,
		CreditAccount:  d.CreditAccount,
		Description:    strPtr(d.Description),
		Note:           strPtr(d.Note),
	}
}

// ToDomainWarehouseVoucher converts a persisted document, validating every enum.
func ToDomainWarehouseVoucher(m models.WarehouseVoucher) (*domain.WarehouseVoucher, error) {
	header, err := ToDomainVoucherHeader(m.VoucherHeader)
	if err != nil {
		return nil, err
	}
	voucherType, err := domain.ParseWarehouseVoucherType(m.VoucherType)
	if err != nil {
		return nil, corrupt(m.ID, err)
	}
	var receiptType domain.ReceiptType
	if m.ReceiptType != nil {
		if receiptType, err = domain.ParseReceiptType(*m.ReceiptType); err != nil {
			return nil, corrupt(m.ID, err)
		}
	}
	var issueType domain.IssueType
	if m.IssueType != nil {
		if issueType, err = domain.ParseIssueType(*m.IssueType); err != nil {
			return nil, corrupt(m.ID, err)
		}
	}

	lines := make([]domain.WarehouseVoucherLine, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = domain.WarehouseVoucherLine{
			ID:               l.ID,
			LineNo:           l.LineNo,
			ProductID:        strVal(l.ProductID),
			ProductCode:      l.ProductCode,
			ProductName:      l.ProductName,
			Unit:             l.Unit,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			Amount:           l.Amount,
			InventoryAccount: l.InventoryAccount,
			ExpenseAccount:   strVal(l.ExpenseAccount),
			WarehouseCode:    strVal(l.WarehouseCode),
			BatchNo:          strVal(l.BatchNo),
			ExpiryDate:       l.ExpiryDate,
			Note:             strVal(l.Note),
		}
	}

	return &domain.WarehouseVoucher{
		VoucherHeader:  header,
		VoucherType:    voucherType,
		ReceiptType:    receiptType,
		IssueType:      issueType,
		PartnerID:      strVal(m.PartnerID),
		PartnerCode:    strVal(m.PartnerCode),
		PartnerName:    strVal(m.PartnerName),
		RefVoucherNo:   strVal(m.RefVoucherNo),
		RefVoucherDate: m.RefVoucherDate,
		RefVoucherType: strVal(m.RefVoucherType),
		WarehouseCode:  m.WarehouseCode,
		WarehouseName:  m.WarehouseName,
		Keeper:         strVal(m.Keeper),
		Receiver:       strVal(m.Receiver),
		Lines:          lines,
		WarehouseTotals: domain.WarehouseTotals{
			TotalQuantity: m.TotalQuantity,
			TotalAmount:   m.TotalAmount,
		},
		DebitAccount:  m.DebitAccount,
		CreditAccount: m.CreditAccount,
		Description:   strVal(m.Description),
		Note:          strVal(m.Note),
	}, nil
}

// EncodeWarehouseVoucher serialises a warehouse voucher into its stored JSON document.
func EncodeWarehouseVoucher(d *domain.WarehouseVoucher) ([]byte, error) {
	data, err := json.Marshal(ToModelWarehouseVoucher(d))
	if err != nil {
		return nil, fmt.Errorf("failed to encode warehouse voucher %s: %w", d.ID, err)
	}
	return data, nil
}

// DecodeWarehouseVoucher parses a stored JSON document into a warehouse voucher.
func DecodeWarehouseVoucher(data []byte) (*domain.WarehouseVoucher, error) {
	var m models.WarehouseVoucher
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, corrupt(m.ID, err)
	}
	return ToDomainWarehouseVoucher(m)
}

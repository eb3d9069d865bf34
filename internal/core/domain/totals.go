package domain

import "github.com/shopspring/decimal"

// CashTotals are the summary amounts derived from cash voucher lines.
type CashTotals struct {
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalTaxAmount decimal.Decimal `json:"totalTaxAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// WarehouseTotals are the summary quantity and amount derived from warehouse voucher lines.
type WarehouseTotals struct {
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// CalculateCashTotals sums line amounts and tax amounts. A missing tax amount counts as zero.
func CalculateCashTotals(lines []CashVoucherLine) CashTotals {
	totalAmount := decimal.Zero
	totalTax := decimal.Zero
	for _, line := range lines {
		totalAmount = totalAmount.Add(line.Amount)
		totalTax = totalTax.Add(line.TaxAmount)
	}
	return CashTotals{
		TotalAmount:    totalAmount,
		TotalTaxAmount: totalTax,
		GrandTotal:     totalAmount.Add(totalTax),
	}
}

// CalculateWarehouseTotals sums line quantities and amounts.
func CalculateWarehouseTotals(lines []WarehouseVoucherLine) WarehouseTotals {
	totalQuantity := decimal.Zero
	totalAmount := decimal.Zero
	for _, line := range lines {
		totalQuantity = totalQuantity.Add(line.Quantity)
		totalAmount = totalAmount.Add(line.Amount)
	}
	return WarehouseTotals{
		TotalQuantity: totalQuantity,
		TotalAmount:   totalAmount,
	}
}

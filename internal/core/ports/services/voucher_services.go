package services

import (
	"context"

	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	"github.com/SscSPs/voucher_management_app/internal/dto"
)

// SequenceAllocator hands out year-scoped document numbers.
type SequenceAllocator interface {
	// Allocate returns the next number for prefix and year, e.g. "PT202500001".
	Allocate(ctx context.Context, prefix string, year int) (string, error)
}

// CashVoucherReaderSvc defines read operations for cash vouchers
type CashVoucherReaderSvc interface {
	// GetCashVoucher retrieves a cash voucher by id.
	GetCashVoucher(ctx context.Context, id string) (*domain.CashVoucher, error)

	// ListCashVouchers returns vouchers matching filter, newest voucher date first.
	ListCashVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.CashVoucher, error)

	// GetCashVoucherStatistics aggregates vouchers matching the type and date range of filter.
	GetCashVoucherStatistics(ctx context.Context, filter domain.VoucherFilter) (*domain.CashVoucherStatistics, error)
}

// CashVoucherWriterSvc defines lifecycle operations for cash vouchers
type CashVoucherWriterSvc interface {
	CreateCashVoucher(ctx context.Context, req dto.CreateCashVoucherRequest, userID string) (*domain.CashVoucher, error)
	UpdateCashVoucher(ctx context.Context, id string, req dto.UpdateCashVoucherRequest, userID string) (*domain.CashVoucher, error)
	PostCashVoucher(ctx context.Context, id string, userID string) (*domain.CashVoucher, error)
	CancelCashVoucher(ctx context.Context, id string, reason string, userID string) (*domain.CashVoucher, error)
	DeleteCashVoucher(ctx context.Context, id string, userID string) error
}

// CashVoucherSvcFacade combines all cash voucher service interfaces
type CashVoucherSvcFacade interface {
	CashVoucherReaderSvc
	CashVoucherWriterSvc
}

// WarehouseVoucherReaderSvc defines read operations for warehouse vouchers
type WarehouseVoucherReaderSvc interface {
	GetWarehouseVoucher(ctx context.Context, id string) (*domain.WarehouseVoucher, error)
	ListWarehouseVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.WarehouseVoucher, error)
	GetWarehouseVoucherStatistics(ctx context.Context, filter domain.VoucherFilter) (*domain.WarehouseVoucherStatistics, error)
}

// WarehouseVoucherWriterSvc defines lifecycle operations for warehouse vouchers
type WarehouseVoucherWriterSvc interface {
	CreateWarehouseVoucher(ctx context.Context, req dto.CreateWarehouseVoucherRequest, userID string) (*domain.WarehouseVoucher, error)
	UpdateWarehouseVoucher(ctx context.Context, id string, req dto.UpdateWarehouseVoucherRequest, userID string) (*domain.WarehouseVoucher, error)
	PostWarehouseVoucher(ctx context.Context, id string, userID string) (*domain.WarehouseVoucher, error)
	CancelWarehouseVoucher(ctx context.Context, id string, reason string, userID string) (*domain.WarehouseVoucher, error)
	DeleteWarehouseVoucher(ctx context.Context, id string, userID string) error
}

// WarehouseVoucherSvcFacade combines all warehouse voucher service interfaces
type WarehouseVoucherSvcFacade interface {
	WarehouseVoucherReaderSvc
	WarehouseVoucherWriterSvc
}

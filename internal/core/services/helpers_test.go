package services_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// sequentialIDs returns a goroutine-safe generator of sortable ids.
func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%06d", n.Add(1))
	}
}

func day(year int, month time.Month, d int) *dto.Date {
	return &dto.Date{Time: time.Date(year, month, d, 0, 0, 0, 0, time.UTC)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func cashRequest(voucherType domain.CashVoucherType, date *dto.Date, amounts ...string) dto.CreateCashVoucherRequest {
	lines := make([]dto.CashVoucherLineRequest, len(amounts))
	for i, a := range amounts {
		lines[i] = dto.CashVoucherLineRequest{
			Description: fmt.Sprintf("Line %d", i+1),
			AccountCode: "131",
			Amount:      dec(a),
		}
	}
	return dto.CreateCashVoucherRequest{
		VoucherType:       voucherType,
		VoucherDate:       date,
		RelatedObjectType: domain.RelatedCustomer,
		RelatedObjectName: "Công ty ABC",
		Reason:            "Thu tiền hàng",
		Lines:             lines,
	}
}

func warehouseRequest(voucherType domain.WarehouseVoucherType, date *dto.Date, warehouseCode string) dto.CreateWarehouseVoucherRequest {
	return dto.CreateWarehouseVoucherRequest{
		VoucherType:   voucherType,
		VoucherDate:   date,
		WarehouseCode: warehouseCode,
		WarehouseName: "Kho " + warehouseCode,
		DebitAccount:  "156",
		CreditAccount: "331",
		Lines: []dto.WarehouseVoucherLineRequest{
			{ProductCode: "SP01", ProductName: "Sản phẩm 1", Unit: "cái", Quantity: dec("10"), UnitPrice: dec("15000")},
			{ProductCode: "SP02", ProductName: "Sản phẩm 2", Unit: "hộp", Quantity: dec("2.5"), UnitPrice: dec("4000")},
		},
	}
}

// interleavingStore runs beforeReplace once, just before the next conditional replace,
// to simulate a concurrent writer between read and write.
type interleavingStore struct {
	*memory.DocumentStore
	mu            sync.Mutex
	beforeReplace func()
}

func (s *interleavingStore) ReplaceIf(ctx context.Context, collection, id string, data []byte, pre portsrepo.Precondition) error {
	s.mu.Lock()
	hook := s.beforeReplace
	s.beforeReplace = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return s.DocumentStore.ReplaceIf(ctx, collection, id, data, pre)
}

// MockDocumentStore is a mock type for the DocumentStore interface
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentStore) Query(ctx context.Context, collection string, filters []portsrepo.Filter, limit int) ([][]byte, error) {
	args := m.Called(ctx, collection, filters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}

func (m *MockDocumentStore) Create(ctx context.Context, collection, id string, data []byte) error {
	args := m.Called(ctx, collection, id, data)
	return args.Error(0)
}

func (m *MockDocumentStore) ReplaceIf(ctx context.Context, collection, id string, data []byte, pre portsrepo.Precondition) error {
	args := m.Called(ctx, collection, id, data, pre)
	return args.Error(0)
}

func (m *MockDocumentStore) DeleteIf(ctx context.Context, collection, id string, pre portsrepo.Precondition) error {
	args := m.Called(ctx, collection, id, pre)
	return args.Error(0)
}

// MockCounterRepository is a mock type for the CounterRepository interface
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

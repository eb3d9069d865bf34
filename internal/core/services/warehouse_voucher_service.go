package services

import (
	"context"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/models"
	"github.com/SscSPs/voucher_management_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// warehouseVoucherService implements portssvc.WarehouseVoucherSvcFacade.
type warehouseVoucherService struct {
	vouchers *lifecycle[*domain.WarehouseVoucher]
}

// WarehouseVoucherOption configures a warehouse voucher service.
type WarehouseVoucherOption func(*warehouseVoucherService)

// WithWarehouseClock replaces the clock used for audit timestamps and numbering years.
func WithWarehouseClock(now func() time.Time) WarehouseVoucherOption {
	return func(s *warehouseVoucherService) {
		s.vouchers.Now = now
	}
}

// WithWarehouseIDGenerator replaces the voucher and line id generator.
func WithWarehouseIDGenerator(newID func() string) WarehouseVoucherOption {
	return func(s *warehouseVoucherService) {
		s.vouchers.NewID = newID
	}
}

// NewWarehouseVoucherService creates a warehouse voucher service backed by store and numbered by sequence.
func NewWarehouseVoucherService(store portsrepo.DocumentStore, sequence portssvc.SequenceAllocator, opts ...WarehouseVoucherOption) portssvc.WarehouseVoucherSvcFacade {
	s := &warehouseVoucherService{
		vouchers: &lifecycle[*domain.WarehouseVoucher]{
			BaseService: newBaseService(),
			codec: voucherCodec[*domain.WarehouseVoucher]{
				kind:       "warehouse voucher",
				collection: models.WarehouseVoucherCollection,
				encode:     mapping.EncodeWarehouseVoucher,
				decode:     mapping.DecodeWarehouseVoucher,
			},
			store:    store,
			sequence: sequence,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.WarehouseVoucherSvcFacade = (*warehouseVoucherService)(nil)

func (s *warehouseVoucherService) CreateWarehouseVoucher(ctx context.Context, req dto.CreateWarehouseVoucherRequest, userID string) (*domain.WarehouseVoucher, error) {
	v := &domain.WarehouseVoucher{
		VoucherType:    req.VoucherType,
		ReceiptType:    req.ReceiptType,
		IssueType:      req.IssueType,
		PartnerID:      req.PartnerID,
		PartnerCode:    req.PartnerCode,
		PartnerName:    req.PartnerName,
		RefVoucherNo:   req.RefVoucherNo,
		RefVoucherDate: req.RefVoucherDate.TimePtr(),
		RefVoucherType: req.RefVoucherType,
		WarehouseCode:  req.WarehouseCode,
		WarehouseName:  req.WarehouseName,
		Keeper:         req.Keeper,
		Receiver:       req.Receiver,
		Lines:          dto.ToDomainWarehouseLines(req.Lines),
		DebitAccount:   req.DebitAccount,
		CreditAccount:  req.CreditAccount,
		Description:    req.Description,
		Note:           req.Note,
	}
	if req.VoucherDate != nil {
		v.VoucherDate = req.VoucherDate.UTC()
	}
	return s.vouchers.create(ctx, v, userID)
}

func (s *warehouseVoucherService) GetWarehouseVoucher(ctx context.Context, id string) (*domain.WarehouseVoucher, error) {
	return s.vouchers.get(ctx, id)
}

func (s *warehouseVoucherService) ListWarehouseVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.WarehouseVoucher, error) {
	var inWarehouse func(*domain.WarehouseVoucher) bool
	if filter.WarehouseCode != "" {
		inWarehouse = func(v *domain.WarehouseVoucher) bool {
			return v.WarehouseCode == filter.WarehouseCode
		}
	}
	vouchers, err := s.vouchers.list(ctx, filter, inWarehouse)
	if err != nil {
		return nil, err
	}
	return derefAll(vouchers), nil
}

func (s *warehouseVoucherService) GetWarehouseVoucherStatistics(ctx context.Context, filter domain.VoucherFilter) (*domain.WarehouseVoucherStatistics, error) {
	vouchers, err := s.vouchers.scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	return aggregateWarehouseStatistics(vouchers), nil
}

func aggregateWarehouseStatistics(vouchers []*domain.WarehouseVoucher) *domain.WarehouseVoucherStatistics {
	stats := &domain.WarehouseVoucherStatistics{
		TotalVouchers: len(vouchers),
		TotalQuantity: decimal.Zero,
		TotalAmount:   decimal.Zero,
	}
	for _, v := range vouchers {
		stats.ByStatus.Add(v.Status)
		if v.Status == domain.StatusCancelled {
			continue
		}
		stats.TotalQuantity = stats.TotalQuantity.Add(v.TotalQuantity)
		stats.TotalAmount = stats.TotalAmount.Add(v.TotalAmount)
	}
	return stats
}

// UpdateWarehouseVoucher applies the supplied fields to a Draft voucher and recomputes its totals.
func (s *warehouseVoucherService) UpdateWarehouseVoucher(ctx context.Context, id string, req dto.UpdateWarehouseVoucherRequest, userID string) (*domain.WarehouseVoucher, error) {
	if req.Lines != nil && len(req.Lines) == 0 {
		return nil, apperrors.NewFieldError("lines", "at least one line is required")
	}
	return s.vouchers.transition(ctx, id, "updated", domain.EditableStatuses, func(v *domain.WarehouseVoucher, _ time.Time) error {
		if req.VoucherDate != nil {
			v.VoucherDate = req.VoucherDate.UTC()
		}
		setString(&v.PartnerName, req.PartnerName)
		setString(&v.WarehouseCode, req.WarehouseCode)
		setString(&v.WarehouseName, req.WarehouseName)
		setString(&v.Keeper, req.Keeper)
		setString(&v.Receiver, req.Receiver)
		setString(&v.Description, req.Description)
		setString(&v.Note, req.Note)
		if req.Lines != nil {
			v.Lines = dto.ToDomainWarehouseLines(req.Lines)
		}
		v.Normalize(s.vouchers.NewID)
		return v.Validate()
	})
}

func (s *warehouseVoucherService) PostWarehouseVoucher(ctx context.Context, id string, userID string) (*domain.WarehouseVoucher, error) {
	return s.vouchers.transition(ctx, id, "posted", domain.PostableStatuses, func(v *domain.WarehouseVoucher, now time.Time) error {
		return v.Post(userID, now)
	})
}

func (s *warehouseVoucherService) CancelWarehouseVoucher(ctx context.Context, id string, reason string, userID string) (*domain.WarehouseVoucher, error) {
	if err := domain.ValidateCancelReason(reason); err != nil {
		return nil, err
	}
	return s.vouchers.transition(ctx, id, "cancelled", domain.CancellableStatuses, func(v *domain.WarehouseVoucher, now time.Time) error {
		return v.MarkCancelled(userID, reason, now)
	})
}

func (s *warehouseVoucherService) DeleteWarehouseVoucher(ctx context.Context, id string, userID string) error {
	return s.vouchers.remove(ctx, id, userID)
}

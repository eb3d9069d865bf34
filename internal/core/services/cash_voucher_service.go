package services

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/models"
	"github.com/SscSPs/voucher_management_app/internal/utils/mapping"
)

// cashVoucherService implements portssvc.CashVoucherSvcFacade.
type cashVoucherService struct {
	vouchers *lifecycle[*domain.CashVoucher]
}

// CashVoucherOption configures a cash voucher service.
type CashVoucherOption func(*cashVoucherService)

// WithCashClock replaces the clock used for audit timestamps and numbering years.
func WithCashClock(now func() time.Time) CashVoucherOption {
	return func(s *cashVoucherService) {
		s.vouchers.Now = now
	}
}

// WithCashIDGenerator replaces the voucher and line id generator.
func WithCashIDGenerator(newID func() string) CashVoucherOption {
	return func(s *cashVoucherService) {
		s.vouchers.NewID = newID
	}
}

// NewCashVoucherService creates a cash voucher service backed by store and numbered by sequence.
func NewCashVoucherService(store portsrepo.DocumentStore, sequence portssvc.SequenceAllocator, opts ...CashVoucherOption) portssvc.CashVoucherSvcFacade {
	s := &cashVoucherService{
		vouchers: &lifecycle[*domain.CashVoucher]{
			BaseService: newBaseService(),
			codec: voucherCodec[*domain.CashVoucher]{
				kind:       "cash voucher",
				collection: models.CashVoucherCollection,
				encode:     mapping.EncodeCashVoucher,
				decode:     mapping.DecodeCashVoucher,
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

var _ portssvc.CashVoucherSvcFacade = (*cashVoucherService)(nil)

func (s *cashVoucherService) CreateCashVoucher(ctx context.Context, req dto.CreateCashVoucherRequest, userID string) (*domain.CashVoucher, error) {
	v := &domain.CashVoucher{
		VoucherType:         req.VoucherType,
		RelatedObjectType:   req.RelatedObjectType,
		RelatedObjectID:     req.RelatedObjectID,
		RelatedObjectCode:   req.RelatedObjectCode,
		RelatedObjectName:   req.RelatedObjectName,
		Address:             req.Address,
		Reason:              req.Reason,
		Description:         req.Description,
		PaymentMethod:       req.PaymentMethod,
		CashAccountCode:     req.CashAccountCode,
		Lines:               dto.ToDomainCashLines(req.Lines),
		ReceiverName:        req.ReceiverName,
		ReceiverID:          req.ReceiverID,
		OriginalVoucherNo:   req.OriginalVoucherNo,
		OriginalVoucherDate: req.OriginalVoucherDate.TimePtr(),
	}
	if req.VoucherDate != nil {
		v.VoucherDate = req.VoucherDate.UTC()
	}
	return s.vouchers.create(ctx, v, userID)
}

func (s *cashVoucherService) GetCashVoucher(ctx context.Context, id string) (*domain.CashVoucher, error) {
	return s.vouchers.get(ctx, id)
}

func (s *cashVoucherService) ListCashVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.CashVoucher, error) {
	vouchers, err := s.vouchers.list(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	return derefAll(vouchers), nil
}

// GetCashVoucherStatistics counts every matching voucher by status; counts per type and amounts
// cover only vouchers that are not cancelled.
func (s *cashVoucherService) GetCashVoucherStatistics(ctx context.Context, filter domain.VoucherFilter) (*domain.CashVoucherStatistics, error) {
	vouchers, err := s.vouchers.scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	return aggregateCashStatistics(vouchers), nil
}

func aggregateCashStatistics(vouchers []*domain.CashVoucher) *domain.CashVoucherStatistics {
	stats := &domain.CashVoucherStatistics{TotalVouchers: len(vouchers)}
	for _, v := range vouchers {
		stats.ByStatus.Add(v.Status)
		if v.Status == domain.StatusCancelled {
			continue
		}
		switch v.VoucherType {
		case domain.CashReceipt:
			stats.ReceiptCount++
			stats.TotalReceiptAmount = stats.TotalReceiptAmount.Add(v.GrandTotal)
		case domain.CashPayment:
			stats.PaymentCount++
			stats.TotalPaymentAmount = stats.TotalPaymentAmount.Add(v.GrandTotal)
		}
	}
	stats.NetCashFlow = stats.TotalReceiptAmount.Sub(stats.TotalPaymentAmount)
	return stats
}

// UpdateCashVoucher applies the supplied fields to a Draft voucher and recomputes its totals.
func (s *cashVoucherService) UpdateCashVoucher(ctx context.Context, id string, req dto.UpdateCashVoucherRequest, userID string) (*domain.CashVoucher, error) {
	if req.Lines != nil && len(req.Lines) == 0 {
		return nil, apperrors.NewFieldError("lines", "at least one line is required")
	}
	return s.vouchers.transition(ctx, id, "updated", domain.EditableStatuses, func(v *domain.CashVoucher, _ time.Time) error {
		if req.VoucherDate != nil {
			v.VoucherDate = req.VoucherDate.UTC()
		}
		setString(&v.RelatedObjectName, req.RelatedObjectName)
		setString(&v.Address, req.Address)
		setString(&v.Reason, req.Reason)
		setString(&v.Description, req.Description)
		if req.PaymentMethod != nil {
			v.PaymentMethod = *req.PaymentMethod
		}
		setString(&v.CashAccountCode, req.CashAccountCode)
		setString(&v.ReceiverName, req.ReceiverName)
		setString(&v.ReceiverID, req.ReceiverID)
		if req.Lines != nil {
			v.Lines = dto.ToDomainCashLines(req.Lines)
		}
		v.Normalize(s.vouchers.NewID)
		return v.Validate()
	})
}

func (s *cashVoucherService) PostCashVoucher(ctx context.Context, id string, userID string) (*domain.CashVoucher, error) {
	return s.vouchers.transition(ctx, id, "posted", domain.PostableStatuses, func(v *domain.CashVoucher, now time.Time) error {
		return v.Post(userID, now)
	})
}

func (s *cashVoucherService) CancelCashVoucher(ctx context.Context, id string, reason string, userID string) (*domain.CashVoucher, error) {
	if err := domain.ValidateCancelReason(reason); err != nil {
		return nil, err
	}
	return s.vouchers.transition(ctx, id, "cancelled", domain.CancellableStatuses, func(v *domain.CashVoucher, now time.Time) error {
		return v.MarkCancelled(userID, reason, now)
	})
}

func (s *cashVoucherService) DeleteCashVoucher(ctx context.Context, id string, userID string) error {
	return s.vouchers.remove(ctx, id, userID)
}

// setString overwrites dst when a value was supplied. Supplied values are trimmed.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

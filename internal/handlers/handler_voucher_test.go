package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/handlers"
	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/SscSPs/voucher_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashVoucherService ---
type MockCashVoucherService struct {
	mock.Mock
}

func (m *MockCashVoucherService) GetCashVoucher(ctx context.Context, id string) (*domain.CashVoucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashVoucher), args.Error(1)
}
func (m *MockCashVoucherService) ListCashVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.CashVoucher, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashVoucher), args.Error(1)
}
func (m *MockCashVoucherService) GetCashVoucherStatistics(ctx context.Context, filter domain.VoucherFilter) (*domain.CashVoucherStatistics, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashVoucherStatistics), args.Error(1)
}
func (m *MockCashVoucherService) CreateCashVoucher(ctx context.Context, req dto.CreateCashVoucherRequest, userID string) (*domain.CashVoucher, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashVoucher), args.Error(1)
}
func (m *MockCashVoucherService) UpdateCashVoucher(ctx context.Context, id string, req dto.UpdateCashVoucherRequest, userID string) (*domain.CashVoucher, error) {
	args := m.Called(ctx, id, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashVoucher), args.Error(1)
}
func (m *MockCashVoucherService) PostCashVoucher(ctx context.Context, id string, userID string) (*domain.CashVoucher, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashVoucher), args.Error(1)
}
func (m *MockCashVoucherService) CancelCashVoucher(ctx context.Context, id string, reason string, userID string) (*domain.CashVoucher, error) {
	args := m.Called(ctx, id, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashVoucher), args.Error(1)
}
func (m *MockCashVoucherService) DeleteCashVoucher(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CashVoucherSvcFacade = (*MockCashVoucherService)(nil)

// --- Mock WarehouseVoucherService ---
type MockWarehouseVoucherService struct {
	mock.Mock
}

func (m *MockWarehouseVoucherService) GetWarehouseVoucher(ctx context.Context, id string) (*domain.WarehouseVoucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseVoucher), args.Error(1)
}
func (m *MockWarehouseVoucherService) ListWarehouseVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.WarehouseVoucher, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarehouseVoucher), args.Error(1)
}
func (m *MockWarehouseVoucherService) GetWarehouseVoucherStatistics(ctx context.Context, filter domain.VoucherFilter) (*domain.WarehouseVoucherStatistics, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseVoucherStatistics), args.Error(1)
}
func (m *MockWarehouseVoucherService) CreateWarehouseVoucher(ctx context.Context, req dto.CreateWarehouseVoucherRequest, userID string) (*domain.WarehouseVoucher, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseVoucher), args.Error(1)
}
func (m *MockWarehouseVoucherService) UpdateWarehouseVoucher(ctx context.Context, id string, req dto.UpdateWarehouseVoucherRequest, userID string) (*domain.WarehouseVoucher, error) {
	args := m.Called(ctx, id, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseVoucher), args.Error(1)
}
func (m *MockWarehouseVoucherService) PostWarehouseVoucher(ctx context.Context, id string, userID string) (*domain.WarehouseVoucher, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseVoucher), args.Error(1)
}
func (m *MockWarehouseVoucherService) CancelWarehouseVoucher(ctx context.Context, id string, reason string, userID string) (*domain.WarehouseVoucher, error) {
	args := m.Called(ctx, id, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseVoucher), args.Error(1)
}
func (m *MockWarehouseVoucherService) DeleteWarehouseVoucher(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

var _ portssvc.WarehouseVoucherSvcFacade = (*MockWarehouseVoucherService)(nil)

// --- Test Suite ---
type VoucherHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	cashService   *MockCashVoucherService
	warehouseSvc  *MockWarehouseVoucherService
	defaultUserID string
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:       "Voucher Management API",
		AppVersion:    "1.0.0",
		IsProduction:  true,
		StoreDriver:   config.BackendMemory,
		CORSOrigins:   []string{"http://localhost:4200"},
		DefaultUserID: "admin",
	}
}

func (suite *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cashService = new(MockCashVoucherService)
	suite.warehouseSvc = new(MockWarehouseVoucherService)
	suite.defaultUserID = "admin"

	handlers.RegisterRoutes(suite.router, testConfig(), nil, &portssvc.ServiceContainer{
		CashVoucher:      suite.cashService,
		WarehouseVoucher: suite.warehouseSvc,
	})
}

func (suite *VoucherHandlerTestSuite) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *VoucherHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleCashVoucher() *domain.CashVoucher {
	return &domain.CashVoucher{
		VoucherHeader: domain.VoucherHeader{
			ID:          "v-1",
			VoucherNo:   "PT202500001",
			VoucherDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusDraft,
			AuditFields: domain.AuditFields{CreatedBy: "admin", Version: 1},
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
		CashTotals: domain.CashTotals{
			TotalAmount:    decimal.NewFromInt(100),
			TotalTaxAmount: decimal.NewFromInt(10),
			GrandTotal:     decimal.NewFromInt(110),
		},
		AmountInWords: "Một trăm mười đồng",
	}
}

const createCashBody = `{
	"voucher_type": "RECEIPT",
	"voucher_date": "2025-03-01",
	"related_object_type": "CUSTOMER",
	"related_object_name": "Công ty ABC",
	"reason": "Thu tiền hàng",
	"lines": [{"description": "Tiền hàng", "account_code": "131", "amount": 100, "tax_amount": "10"}]
}`

// --- Test Cases ---

func (suite *VoucherHandlerTestSuite) TestCreateCashVoucher_Success() {
	suite.cashService.On("CreateCashVoucher", mock.Anything,
		mock.MatchedBy(func(req dto.CreateCashVoucherRequest) bool {
			return req.VoucherType == domain.CashReceipt &&
				req.VoucherDate != nil && req.VoucherDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				len(req.Lines) == 1 && req.Lines[0].TaxAmount != nil && req.Lines[0].TaxAmount.Equal(decimal.NewFromInt(10))
		}),
		"cashier-7",
	).Return(sampleCashVoucher(), nil).Once()

	w := suite.do(http.MethodPost, "/api/cash-vouchers", createCashBody, middleware.UserIDHeader, "cashier-7")

	suite.Equal(http.StatusCreated, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("PT202500001", body["voucher_no"])
	suite.Equal("DRAFT", body["status"])
	suite.Equal("110", body["grand_total"])
	suite.Equal("Một trăm mười đồng", body["amount_in_words"])
	suite.cashService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCreateCashVoucher_DefaultUser() {
	suite.cashService.On("CreateCashVoucher", mock.Anything, mock.Anything, suite.defaultUserID).
		Return(sampleCashVoucher(), nil).Once()

	w := suite.do(http.MethodPost, "/api/cash-vouchers", createCashBody)

	suite.Equal(http.StatusCreated, w.Code)
	suite.cashService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCreateCashVoucher_BindingErrorsNameField() {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing voucher type",
			body:  `{"voucher_date":"2025-03-01","related_object_type":"CUSTOMER","related_object_name":"A","reason":"r","lines":[{"description":"d","account_code":"131","amount":1}]}`,
			field: "voucher_type",
		},
		{
			name:  "unknown voucher type",
			body:  `{"voucher_type":"TRANSFER","voucher_date":"2025-03-01","related_object_type":"CUSTOMER","related_object_name":"A","reason":"r","lines":[{"description":"d","account_code":"131","amount":1}]}`,
			field: "voucher_type",
		},
		{
			name:  "empty lines",
			body:  `{"voucher_type":"RECEIPT","voucher_date":"2025-03-01","related_object_type":"CUSTOMER","related_object_name":"A","reason":"r","lines":[]}`,
			field: "lines",
		},
		{
			name:  "line without description",
			body:  `{"voucher_type":"RECEIPT","voucher_date":"2025-03-01","related_object_type":"CUSTOMER","related_object_name":"A","reason":"r","lines":[{"account_code":"131","amount":1}]}`,
			field: "lines[0].description",
		},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/cash-vouchers", tc.body)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal(tc.field, suite.decodeError(w).Field)
		})
	}
	suite.cashService.AssertNotCalled(suite.T(), "CreateCashVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestCreateCashVoucher_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/cash-vouchers", `{"voucher_date":"yesterday"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.cashService.AssertNotCalled(suite.T(), "CreateCashVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestServiceErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{name: "field validation", err: apperrors.NewFieldError("lines[0].amount", "must not be negative"), status: http.StatusBadRequest, field: "lines[0].amount"},
		{name: "not found", err: apperrors.ErrNotFound, status: http.StatusNotFound},
		{name: "invalid transition", err: apperrors.ErrInvalidTransition, status: http.StatusBadRequest},
		{name: "conflict", err: apperrors.ErrConflict, status: http.StatusConflict},
		{name: "store failure", err: apperrors.NewAppError(http.StatusInternalServerError, "store unavailable", errors.New("dial tcp")), status: http.StatusInternalServerError},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.cashService.On("PostCashVoucher", mock.Anything, "v-1", suite.defaultUserID).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/cash-vouchers/v-1/post", "")

			suite.Equal(tc.status, w.Code)
			body := suite.decodeError(w)
			suite.NotEmpty(body.Error)
			suite.Equal(tc.field, body.Field)
		})
	}
}

func (suite *VoucherHandlerTestSuite) TestGetCashVoucher() {
	suite.cashService.On("GetCashVoucher", mock.Anything, "v-1").Return(sampleCashVoucher(), nil).Once()
	suite.cashService.On("GetCashVoucher", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	ok := suite.do(http.MethodGet, "/api/cash-vouchers/v-1", "")
	suite.Equal(http.StatusOK, ok.Code)
	var body dto.CashVoucherResponse
	suite.Require().NoError(json.Unmarshal(ok.Body.Bytes(), &body))
	suite.Equal("v-1", body.ID)
	suite.Require().Len(body.Lines, 1)
	suite.Equal("131", body.Lines[0].AccountCode)

	missing := suite.do(http.MethodGet, "/api/cash-vouchers/missing", "")
	suite.Equal(http.StatusNotFound, missing.Code)
}

func (suite *VoucherHandlerTestSuite) TestUpdateCashVoucher() {
	suite.cashService.On("UpdateCashVoucher", mock.Anything, "v-1",
		mock.MatchedBy(func(req dto.UpdateCashVoucherRequest) bool {
			return req.Reason != nil && *req.Reason == "Thu tiền đặt cọc" && req.Lines == nil && req.Address == nil
		}),
		suite.defaultUserID,
	).Return(sampleCashVoucher(), nil).Once()

	w := suite.do(http.MethodPut, "/api/cash-vouchers/v-1", `{"reason":"Thu tiền đặt cọc"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.cashService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCancelCashVoucher() {
	reason := "Khách hàng hủy đơn hàng"
	suite.cashService.On("CancelCashVoucher", mock.Anything, "v-1", reason, suite.defaultUserID).
		Return(sampleCashVoucher(), nil).Once()

	w := suite.do(http.MethodPost, "/api/cash-vouchers/v-1/cancel?reason="+url.QueryEscape(reason), "")
	suite.Equal(http.StatusOK, w.Code)

	missing := suite.do(http.MethodPost, "/api/cash-vouchers/v-1/cancel", "")
	suite.Equal(http.StatusBadRequest, missing.Code)
	suite.Equal("reason", suite.decodeError(missing).Field)

	suite.cashService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestDeleteCashVoucher() {
	suite.cashService.On("DeleteCashVoucher", mock.Anything, "v-1", suite.defaultUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/cash-vouchers/v-1", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Đã xóa phiếu thành công", body.Message)
}

func (suite *VoucherHandlerTestSuite) TestListCashVouchers_Params() {
	suite.cashService.On("ListCashVouchers", mock.Anything,
		mock.MatchedBy(func(f domain.VoucherFilter) bool {
			return f.Limit == domain.DefaultListLimit && f.VoucherType == "" && f.Status == "" && f.FromDate == nil
		}),
	).Return([]domain.CashVoucher{*sampleCashVoucher()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/cash-vouchers", "")
	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CashVoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)

	suite.cashService.On("ListCashVouchers", mock.Anything,
		mock.MatchedBy(func(f domain.VoucherFilter) bool {
			wantTo := time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC)
			return f.Limit == 20 && f.VoucherType == "PAYMENT" && f.Status == domain.StatusPosted &&
				f.FromDate != nil && f.FromDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				f.ToDate != nil && f.ToDate.Equal(wantTo)
		}),
	).Return([]domain.CashVoucher{}, nil).Once()

	filtered := suite.do(http.MethodGet, "/api/cash-vouchers?voucher_type=PAYMENT&status=POSTED&from_date=2025-03-01&to_date=2025-03-31&limit=20", "")
	suite.Equal(http.StatusOK, filtered.Code)
	suite.Equal("[]", strings.TrimSpace(filtered.Body.String()))

	suite.cashService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestListCashVouchers_InvalidParams() {
	testCases := []struct {
		query string
		field string
	}{
		{query: "limit=0", field: "limit"},
		{query: "limit=501", field: "limit"},
		{query: "status=ARCHIVED", field: "status"},
		{query: "from_date=03/01/2025", field: "from_date"},
	}
	for _, tc := range testCases {
		suite.Run(tc.query, func() {
			w := suite.do(http.MethodGet, "/api/cash-vouchers?"+tc.query, "")
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal(tc.field, suite.decodeError(w).Field)
		})
	}
	suite.cashService.AssertNotCalled(suite.T(), "ListCashVouchers", mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestCashStatistics() {
	suite.cashService.On("GetCashVoucherStatistics", mock.Anything,
		mock.MatchedBy(func(f domain.VoucherFilter) bool { return f.VoucherType == "RECEIPT" }),
	).Return(&domain.CashVoucherStatistics{
		TotalVouchers:      2,
		ReceiptCount:       1,
		TotalReceiptAmount: decimal.NewFromInt(500),
		NetCashFlow:        decimal.NewFromInt(500),
		ByStatus:           domain.StatusCounts{Posted: 1, Cancelled: 1},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/cash-vouchers/statistics?voucher_type=RECEIPT", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CashStatisticsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(2, body.TotalVouchers)
	suite.Equal(1, body.ByStatus.Cancelled)
	suite.True(body.TotalReceiptAmount.Equal(decimal.NewFromInt(500)))
}

func (suite *VoucherHandlerTestSuite) TestWarehouseRoutes() {
	voucher := &domain.WarehouseVoucher{
		VoucherHeader: domain.VoucherHeader{ID: "w-1", VoucherNo: "PNK202500001", Status: domain.StatusDraft},
		VoucherType:   domain.WarehouseReceipt,
		WarehouseCode: "K01",
		WarehouseName: "Kho chính",
		WarehouseTotals: domain.WarehouseTotals{
			TotalQuantity: decimal.NewFromInt(10),
			TotalAmount:   decimal.NewFromInt(150000),
		},
	}
	suite.warehouseSvc.On("ListWarehouseVouchers", mock.Anything,
		mock.MatchedBy(func(f domain.VoucherFilter) bool { return f.WarehouseCode == "K01" && f.VoucherType == "RECEIPT" }),
	).Return([]domain.WarehouseVoucher{*voucher}, nil).Once()
	suite.warehouseSvc.On("GetWarehouseVoucherStatistics", mock.Anything, mock.Anything).
		Return(&domain.WarehouseVoucherStatistics{
			TotalVouchers: 3,
			ByStatus:      domain.StatusCounts{Draft: 1, Posted: 1, Cancelled: 1},
			TotalQuantity: decimal.NewFromInt(25),
			TotalAmount:   decimal.NewFromInt(320000),
		}, nil).Once()
	suite.warehouseSvc.On("DeleteWarehouseVoucher", mock.Anything, "w-1", suite.defaultUserID).
		Return(apperrors.ErrInvalidTransition).Once()

	list := suite.do(http.MethodGet, "/api/warehouse-vouchers?voucher_type=RECEIPT&warehouse_code=K01", "")
	suite.Equal(http.StatusOK, list.Code)
	var vouchers []dto.WarehouseVoucherResponse
	suite.Require().NoError(json.Unmarshal(list.Body.Bytes(), &vouchers))
	suite.Require().Len(vouchers, 1)
	suite.Equal("PNK202500001", vouchers[0].VoucherNo)

	stats := suite.do(http.MethodGet, "/api/warehouse-vouchers/statistics", "")
	suite.Equal(http.StatusOK, stats.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(stats.Body.Bytes(), &body))
	suite.Equal(float64(1), body["cancelled_count"])
	suite.Equal("320000", body["total_amount"])

	del := suite.do(http.MethodDelete, "/api/warehouse-vouchers/w-1", "")
	suite.Equal(http.StatusBadRequest, del.Code)

	invalidType := suite.do(http.MethodGet, "/api/warehouse-vouchers?voucher_type=PAYMENT", "")
	suite.Equal(http.StatusBadRequest, invalidType.Code)

	suite.warehouseSvc.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestHealth() {
	home := suite.do(http.MethodGet, "/", "")
	suite.Equal(http.StatusOK, home.Code)
	var body dto.HealthResponse
	suite.Require().NoError(json.Unmarshal(home.Body.Bytes(), &body))
	suite.Equal("ok", body.Status)
	suite.Equal("Voucher Management API", body.App)

	health := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, health.Code)
	suite.Require().NoError(json.Unmarshal(health.Body.Bytes(), &body))
	suite.Equal("healthy", body.Status)
}

// --- Run Test Suite ---
func TestVoucherHandler(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func TestRateLimit_RejectsAfterQuota(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	cashService := new(MockCashVoucherService)
	cashService.On("GetCashVoucher", mock.Anything, "v-1").Return(sampleCashVoucher(), nil)
	handlers.RegisterRoutes(router, testConfig(), limiter, &portssvc.ServiceContainer{
		CashVoucher:      cashService,
		WarehouseVoucher: new(MockWarehouseVoucherService),
	})

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cash-vouchers/v-1", nil))
		codes[i] = w.Code
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health checks sit outside the limited group.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

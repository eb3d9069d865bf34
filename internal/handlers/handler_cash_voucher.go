package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deletedMessage is returned by both delete endpoints.
const deletedMessage = "Đã xóa phiếu thành công"

// cashVoucherHandler handles HTTP requests related to cash receipts and payments.
type cashVoucherHandler struct {
	cashVoucherService portssvc.CashVoucherSvcFacade
}

func newCashVoucherHandler(cs portssvc.CashVoucherSvcFacade) *cashVoucherHandler {
	return &cashVoucherHandler{cashVoucherService: cs}
}

// RegisterCashVoucherRoutes registers the cash voucher routes under rg.
func RegisterCashVoucherRoutes(rg *gin.RouterGroup, cashVoucherService portssvc.CashVoucherSvcFacade) {
	h := newCashVoucherHandler(cashVoucherService)

	vouchers := rg.Group("/cash-vouchers")
	{
		vouchers.POST("", h.createCashVoucher)
		vouchers.GET("", h.listCashVouchers)
		vouchers.GET("/statistics", h.getCashVoucherStatistics)
		vouchers.GET("/:id", h.getCashVoucher)
		vouchers.PUT("/:id", h.updateCashVoucher)
		vouchers.POST("/:id/post", h.postCashVoucher)
		vouchers.POST("/:id/cancel", h.cancelCashVoucher)
		vouchers.DELETE("/:id", h.deleteCashVoucher)
	}
}

// createCashVoucher godoc
// @Summary Create a cash voucher
// @Description Creates a cash receipt (PT) or payment (PC) in Draft status and assigns the next voucher number for its year
// @Tags cash-vouchers
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   voucher body dto.CreateCashVoucherRequest true "Cash voucher"
// @Success 201 {object} dto.CashVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create cash voucher"
// @Router /cash-vouchers [post]
func (h *cashVoucherHandler) createCashVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID := requestUserID(c)
	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to create cash voucher", slog.String("voucher_type", string(req.VoucherType)))

	voucher, err := h.cashVoucherService.CreateCashVoucher(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create cash voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashVoucherResponse(voucher))
}

// getCashVoucher godoc
// @Summary Get a cash voucher
// @Tags cash-vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.CashVoucherResponse
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve cash voucher"
// @Router /cash-vouchers/{id} [get]
func (h *cashVoucherHandler) getCashVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))

	voucher, err := h.cashVoucherService.GetCashVoucher(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve cash voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashVoucherResponse(voucher))
}

// listCashVouchers godoc
// @Summary List cash vouchers
// @Description Lists cash vouchers, newest voucher date first. Status and date filters are applied to a window of twice the limit.
// @Tags cash-vouchers
// @Produce  json
// @Param   voucher_type query string false "RECEIPT or PAYMENT"
// @Param   status query string false "DRAFT, POSTED or CANCELLED"
// @Param   from_date query string false "Earliest voucher date (YYYY-MM-DD or RFC 3339)"
// @Param   to_date query string false "Latest voucher date (YYYY-MM-DD or RFC 3339)"
// @Param   limit query int false "Maximum results (1-500)" default(100)
// @Success 200 {array} dto.CashVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list cash vouchers"
// @Router /cash-vouchers [get]
func (h *cashVoucherHandler) listCashVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCashVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.Filter()
	if err != nil {
		respondServiceError(c, logger, err, "list cash vouchers")
		return
	}

	vouchers, err := h.cashVoucherService.ListCashVouchers(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "list cash vouchers")
		return
	}

	logger.Info("Cash vouchers listed successfully", slog.Int("count", len(vouchers)))
	c.JSON(http.StatusOK, dto.ToListCashVoucherResponse(vouchers))
}

// getCashVoucherStatistics godoc
// @Summary Cash voucher statistics
// @Description Counts vouchers by status and sums receipts and payments; cancelled vouchers are counted but not summed
// @Tags cash-vouchers
// @Produce  json
// @Param   voucher_type query string false "RECEIPT or PAYMENT"
// @Param   from_date query string false "Earliest voucher date"
// @Param   to_date query string false "Latest voucher date"
// @Success 200 {object} dto.CashStatisticsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute cash voucher statistics"
// @Router /cash-vouchers/statistics [get]
func (h *cashVoucherHandler) getCashVoucherStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CashStatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.Filter()
	if err != nil {
		respondServiceError(c, logger, err, "compute cash voucher statistics")
		return
	}

	stats, err := h.cashVoucherService.GetCashVoucherStatistics(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "compute cash voucher statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashStatisticsResponse(stats))
}

// updateCashVoucher godoc
// @Summary Update a draft cash voucher
// @Description Applies the supplied fields to a Draft voucher; supplying lines replaces all lines and recomputes totals
// @Tags cash-vouchers
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Param   voucher body dto.UpdateCashVoucherRequest true "Fields to change"
// @Success 200 {object} dto.CashVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or voucher is not a draft"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Voucher was modified concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed to update cash voucher"
// @Router /cash-vouchers/{id} [put]
func (h *cashVoucherHandler) updateCashVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))
	var req dto.UpdateCashVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	voucher, err := h.cashVoucherService.UpdateCashVoucher(c.Request.Context(), c.Param("id"), req, requestUserID(c))
	if err != nil {
		respondServiceError(c, logger, err, "update cash voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashVoucherResponse(voucher))
}

// postCashVoucher godoc
// @Summary Post a cash voucher
// @Tags cash-vouchers
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.CashVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Voucher is not a draft"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to post cash voucher"
// @Router /cash-vouchers/{id}/post [post]
func (h *cashVoucherHandler) postCashVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))

	voucher, err := h.cashVoucherService.PostCashVoucher(c.Request.Context(), c.Param("id"), requestUserID(c))
	if err != nil {
		respondServiceError(c, logger, err, "post cash voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashVoucherResponse(voucher))
}

// cancelCashVoucher godoc
// @Summary Cancel a cash voucher
// @Tags cash-vouchers
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Param   reason query string true "Cancellation reason, at least 10 characters"
// @Success 200 {object} dto.CashVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Reason too short or voucher already cancelled"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Voucher was modified concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed to cancel cash voucher"
// @Router /cash-vouchers/{id}/cancel [post]
func (h *cashVoucherHandler) cancelCashVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))
	var params dto.CancelVoucherParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	voucher, err := h.cashVoucherService.CancelCashVoucher(c.Request.Context(), c.Param("id"), params.Reason, requestUserID(c))
	if err != nil {
		respondServiceError(c, logger, err, "cancel cash voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashVoucherResponse(voucher))
}

// deleteCashVoucher godoc
// @Summary Delete a draft cash voucher
// @Tags cash-vouchers
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Voucher is not a draft"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete cash voucher"
// @Router /cash-vouchers/{id} [delete]
func (h *cashVoucherHandler) deleteCashVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))

	if err := h.cashVoucherService.DeleteCashVoucher(c.Request.Context(), c.Param("id"), requestUserID(c)); err != nil {
		respondServiceError(c, logger, err, "delete cash voucher")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: deletedMessage})
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// warehouseVoucherHandler handles HTTP requests related to goods receipts and issues.
type warehouseVoucherHandler struct {
	warehouseVoucherService portssvc.WarehouseVoucherSvcFacade
}

func newWarehouseVoucherHandler(cs portssvc.WarehouseVoucherSvcFacade) *warehouseVoucherHandler {
	return &warehouseVoucherHandler{warehouseVoucherService: cs}
}

// RegisterWarehouseVoucherRoutes registers the warehouse voucher routes under rg.
func RegisterWarehouseVoucherRoutes(rg *gin.RouterGroup, warehouseVoucherService portssvc.WarehouseVoucherSvcFacade) {
	h := newWarehouseVoucherHandler(warehouseVoucherService)

	vouchers := rg.Group("/warehouse-vouchers")
	{
		vouchers.POST("", h.createWarehouseVoucher)
		vouchers.GET("", h.listWarehouseVouchers)
		vouchers.GET("/statistics", h.getWarehouseVoucherStatistics)
		vouchers.GET("/:id", h.getWarehouseVoucher)
		vouchers.PUT("/:id", h.updateWarehouseVoucher)
		vouchers.POST("/:id/post", h.postWarehouseVoucher)
		vouchers.POST("/:id/cancel", h.cancelWarehouseVoucher)
		vouchers.DELETE("/:id", h.deleteWarehouseVoucher)
	}
}

// createWarehouseVoucher godoc
// @Summary Create a warehouse voucher
// @Description Creates a goods receipt (PNK) or issue (PXK) in Draft status and assigns the next voucher number for its year. Omitted line amounts are derived from quantity and unit price.
// @Tags warehouse-vouchers
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   voucher body dto.CreateWarehouseVoucherRequest true "Warehouse voucher"
// @Success 201 {object} dto.WarehouseVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create warehouse voucher"
// @Router /warehouse-vouchers [post]
func (h *warehouseVoucherHandler) createWarehouseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWarehouseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID := requestUserID(c)
	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to create warehouse voucher", slog.String("voucher_type", string(req.VoucherType)))

	voucher, err := h.warehouseVoucherService.CreateWarehouseVoucher(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create warehouse voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWarehouseVoucherResponse(voucher))
}

// getWarehouseVoucher godoc
// @Summary Get a warehouse voucher
// @Tags warehouse-vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.WarehouseVoucherResponse
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve warehouse voucher"
// @Router /warehouse-vouchers/{id} [get]
func (h *warehouseVoucherHandler) getWarehouseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))

	voucher, err := h.warehouseVoucherService.GetWarehouseVoucher(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve warehouse voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseVoucherResponse(voucher))
}

// listWarehouseVouchers godoc
// @Summary List warehouse vouchers
// @Description Lists warehouse vouchers, newest voucher date first. Status and date filters are applied to a window of twice the limit.
// @Tags warehouse-vouchers
// @Produce  json
// @Param   voucher_type query string false "RECEIPT or ISSUE"
// @Param   status query string false "DRAFT, POSTED or CANCELLED"
// @Param   warehouse_code query string false "Warehouse code"
// @Param   from_date query string false "Earliest voucher date (YYYY-MM-DD or RFC 3339)"
// @Param   to_date query string false "Latest voucher date (YYYY-MM-DD or RFC 3339)"
// @Param   limit query int false "Maximum results (1-500)" default(100)
// @Success 200 {array} dto.WarehouseVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list warehouse vouchers"
// @Router /warehouse-vouchers [get]
func (h *warehouseVoucherHandler) listWarehouseVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWarehouseVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.Filter()
	if err != nil {
		respondServiceError(c, logger, err, "list warehouse vouchers")
		return
	}

	vouchers, err := h.warehouseVoucherService.ListWarehouseVouchers(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "list warehouse vouchers")
		return
	}

	logger.Info("Warehouse vouchers listed successfully", slog.Int("count", len(vouchers)))
	c.JSON(http.StatusOK, dto.ToListWarehouseVoucherResponse(vouchers))
}

// getWarehouseVoucherStatistics godoc
// @Summary Warehouse voucher statistics
// @Description Counts vouchers by status and sums quantities and amounts; cancelled vouchers are counted but not summed
// @Tags warehouse-vouchers
// @Produce  json
// @Param   voucher_type query string false "RECEIPT or ISSUE"
// @Param   from_date query string false "Earliest voucher date"
// @Param   to_date query string false "Latest voucher date"
// @Success 200 {object} dto.WarehouseStatisticsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute warehouse voucher statistics"
// @Router /warehouse-vouchers/statistics [get]
func (h *warehouseVoucherHandler) getWarehouseVoucherStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.WarehouseStatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.Filter()
	if err != nil {
		respondServiceError(c, logger, err, "compute warehouse voucher statistics")
		return
	}

	stats, err := h.warehouseVoucherService.GetWarehouseVoucherStatistics(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "compute warehouse voucher statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseStatisticsResponse(stats))
}

// updateWarehouseVoucher godoc
// @Summary Update a draft warehouse voucher
// @Description Applies the supplied fields to a Draft voucher; supplying lines replaces all lines and recomputes totals
// @Tags warehouse-vouchers
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Param   voucher body dto.UpdateWarehouseVoucherRequest true "Fields to change"
// @Success 200 {object} dto.WarehouseVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or voucher is not a draft"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Voucher was modified concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed to update warehouse voucher"
// @Router /warehouse-vouchers/{id} [put]
func (h *warehouseVoucherHandler) updateWarehouseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))
	var req dto.UpdateWarehouseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	voucher, err := h.warehouseVoucherService.UpdateWarehouseVoucher(c.Request.Context(), c.Param("id"), req, requestUserID(c))
	if err != nil {
		respondServiceError(c, logger, err, "update warehouse voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseVoucherResponse(voucher))
}

// postWarehouseVoucher godoc
// @Summary Post a warehouse voucher
// @Tags warehouse-vouchers
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.WarehouseVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Voucher is not a draft"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to post warehouse voucher"
// @Router /warehouse-vouchers/{id}/post [post]
func (h *warehouseVoucherHandler) postWarehouseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))

	voucher, err := h.warehouseVoucherService.PostWarehouseVoucher(c.Request.Context(), c.Param("id"), requestUserID(c))
	if err != nil {
		respondServiceError(c, logger, err, "post warehouse voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseVoucherResponse(voucher))
}

// cancelWarehouseVoucher godoc
// @Summary Cancel a warehouse voucher
// @Tags warehouse-vouchers
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Param   reason query string true "Cancellation reason, at least 10 characters"
// @Success 200 {object} dto.WarehouseVoucherResponse
// @Failure 400 {object} dto.ErrorResponse "Reason too short or voucher already cancelled"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 409 {object} dto.ErrorResponse "Voucher was modified concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed to cancel warehouse voucher"
// @Router /warehouse-vouchers/{id}/cancel [post]
func (h *warehouseVoucherHandler) cancelWarehouseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))
	var params dto.CancelVoucherParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	voucher, err := h.warehouseVoucherService.CancelWarehouseVoucher(c.Request.Context(), c.Param("id"), params.Reason, requestUserID(c))
	if err != nil {
		respondServiceError(c, logger, err, "cancel warehouse voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseVoucherResponse(voucher))
}

// deleteWarehouseVoucher godoc
// @Summary Delete a draft warehouse voucher
// @Tags warehouse-vouchers
// @Produce  json
// @Param   X-User-ID header string false "Caller user ID"
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Voucher is not a draft"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete warehouse voucher"
// @Router /warehouse-vouchers/{id} [delete]
func (h *warehouseVoucherHandler) deleteWarehouseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_id", c.Param("id")))

	if err := h.warehouseVoucherService.DeleteWarehouseVoucher(c.Request.Context(), c.Param("id"), requestUserID(c)); err != nil {
		respondServiceError(c, logger, err, "delete warehouse voucher")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: deletedMessage})
}

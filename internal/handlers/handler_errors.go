package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// useWireFieldNames makes validation errors report json/form names instead of Go field names.
func useWireFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})
}

// respondBindError answers 400 for a request that failed to bind, naming the first offending field.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request: " + field + " failed on the '" + fe.Tag() + "' rule",
			Field: field,
		})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// respondServiceError maps a service error to its HTTP status. Store failures are checked
// first so a backend error is never reported as a client error.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var fieldErr *apperrors.FieldError
	switch {
	case errors.Is(err, apperrors.ErrStore):
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	case errors.As(err, &fieldErr):
		logger.Warn("Validation error", slog.String("field", fieldErr.Field), slog.String("error", fieldErr.Message))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fieldErr.Message, Field: fieldErr.Field})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Voucher not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Voucher not found"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		logger.Warn("Operation not permitted", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Concurrent modification", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Voucher was modified by another request, reload and try again"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

// requestUserID returns the caller named by the identity middleware.
func requestUserID(c *gin.Context) string {
	userID, _ := middleware.GetUserIDFromContext(c)
	return userID
}

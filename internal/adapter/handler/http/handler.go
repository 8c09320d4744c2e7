package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrInvalidCallbackToken:       http.StatusUnauthorized,

	domain.ErrNoUpdatedData: http.StatusConflict,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrEmptyCart:        http.StatusUnprocessableEntity,
	domain.ErrCartBadQuantity:  http.StatusUnprocessableEntity,
	domain.ErrBadOrderStatus:   http.StatusUnprocessableEntity,
	domain.ErrStatusTransition: http.StatusUnprocessableEntity,
	domain.ErrOrderUnlinked:    http.StatusInternalServerError,
	domain.ErrInvoiceRequest:   http.StatusBadGateway,
}

func statusFromError(err error) int {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		return http.StatusInternalServerError
	}
	return statusCode
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func handleAbort(ctx *gin.Context, err error) {
	ctx.AbortWithError(statusFromError(err), err)
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, gin.H{"error": err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

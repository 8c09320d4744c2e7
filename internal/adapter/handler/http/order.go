package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type lineItemReq struct {
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
}

type checkoutRequest struct {
	Items       []lineItemReq `json:"items"`
	TableNumber *int32        `json:"table_number"`
}

type orderResp struct {
	ID          string            `json:"id"`
	ExternalID  *string           `json:"external_id,omitempty"`
	Items       []domain.LineItem `json:"items"`
	Total       decimal.Decimal   `json:"total"`
	Status      string            `json:"status"`
	InvoiceURL  *string           `json:"invoice_url,omitempty"`
	TableNumber *int32            `json:"table_number,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func newOrderResp(o *domain.Order) orderResp {
	resp := orderResp{
		ID:          o.ID.String(),
		Items:       o.Items,
		Total:       o.Total,
		Status:      string(o.Status),
		InvoiceURL:  o.InvoiceURL,
		TableNumber: o.TableNumber,
		CreatedAt:   o.CreatedAt,
	}
	if o.ExternalID != nil {
		ext := o.ExternalID.String()
		resp.ExternalID = &ext
	}
	return resp
}

// Checkout creates the order and attaches a payment link. When order
// creation succeeded but a later step failed, the persisted order is still
// returned so the client can retry invoice creation by id.
func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.LineItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order, err := oh.service.Checkout(ctx, items, req.TableNumber)
	if err != nil {
		if order != nil {
			// Order persisted, payment link pending.
			ctx.JSON(statusFromError(err), gin.H{
				"order": newOrderResp(order),
				"error": err.Error(),
			})
			return
		}
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) RetryInvoice(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.RetryInvoice(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type qrResp struct {
	QRString string `json:"qr_string"`
	QRCodeID string `json:"qr_code_id"`
}

func (oh *OrderHandler) CreateQR(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	qr, err := oh.service.OrderQR(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, qrResp{QRString: qr.Payload, QRCodeID: qr.ProviderID})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	next, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.SetOrderStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			// Lost the race against a concurrent transition.
			oh.handleError(ctx, domain.ErrNoUpdatedData)
			return
		}
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

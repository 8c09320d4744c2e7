package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

const callbackTokenHeader = "x-callback-token"

type WebhookHandler struct {
	Handler
	service       port.Service
	callbackToken string
}

func NewWebhookHandler(service port.Service, callbackToken string, logger *zap.Logger) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler:       *NewHandler(logger),
		service:       service,
		callbackToken: callbackToken,
	}, nil
}

type paymentCallback struct {
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}

// PaymentCallback ingests payment-status notifications from the gateway.
// Delivery is at-least-once: a no-op reconciliation still answers 2xx, and
// only a store failure returns 5xx to invite a gateway retry.
func (wh *WebhookHandler) PaymentCallback(ctx *gin.Context) {
	if wh.callbackToken != "" &&
		ctx.GetHeader(callbackTokenHeader) != wh.callbackToken {
		wh.handleError(ctx, domain.ErrInvalidCallbackToken)
		return
	}

	var callback paymentCallback
	if err := ctx.ShouldBindJSON(&callback); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	wh.logger.Info("payment callback received",
		zap.String("external_id", callback.ExternalID),
		zap.String("status", callback.Status))

	result, err := wh.service.ReconcilePayment(ctx, callback.ExternalID, callback.Status)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, gin.H{"result": string(result)}, http.StatusOK)
}

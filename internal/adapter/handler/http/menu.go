package http

import (
	"github.com/gin-gonic/gin"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

type MenuHandler struct {
	Handler
	service port.Service
}

func NewMenuHandler(service port.Service, logger *zap.Logger) (*MenuHandler, error) {
	return &MenuHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (mh *MenuHandler) ListMenu(ctx *gin.Context) {
	items, err := mh.service.Menu(ctx)
	if err != nil {
		mh.handleError(ctx, err)
		return
	}

	mh.handleSuccess(ctx, items)
}

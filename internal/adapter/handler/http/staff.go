package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

type StaffHandler struct {
	Handler
	service port.Service
}

func NewStaffHandler(service port.Service, logger *zap.Logger) (*StaffHandler, error) {
	return &StaffHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type staffRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (sh *StaffHandler) Register(ctx *gin.Context) {
	var req staffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	staff := &domain.Staff{Login: req.Login, Password: req.Password}
	_, err := sh.service.RegisterStaff(ctx, staff)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccessWithStatus(ctx, nil, http.StatusCreated)
}

type loginResp struct {
	Token string `json:"token"`
}

func (sh *StaffHandler) Login(ctx *gin.Context) {
	var req staffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	token, err := sh.service.LoginStaff(ctx, req.Login, req.Password)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, loginResp{Token: token})
}

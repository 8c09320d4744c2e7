package http

import (
	"github.com/gin-gonic/gin"
	"github.com/restocinta/orderdesk/internal/adapter/config"
	"github.com/restocinta/orderdesk/internal/adapter/metrics"
	"github.com/restocinta/orderdesk/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	webhookHandler *WebhookHandler,
	menuHandler *MenuHandler,
	staffHandler *StaffHandler,
	hub *DashboardHub) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/menu", menuHandler.ListMenu)

		api.POST("/orders", orderHandler.Checkout)
		api.POST("/orders/:id/invoice", orderHandler.RetryInvoice)
		api.POST("/orders/:id/qr", orderHandler.CreateQR)

		api.POST("/payment/callback", webhookHandler.PaymentCallback)

		staff := api.Group("/staff")
		{
			staff.POST("/register", staffHandler.Register)
			staff.POST("/login", staffHandler.Login)
		}

		dashboard := api.Group("")
		{
			dashboard.Use(authCheck(tokenService))
			dashboard.GET("/orders", orderHandler.ListOrders)
			dashboard.GET("/orders/:id", orderHandler.GetOrder)
			dashboard.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
			dashboard.GET("/dashboard/ws", hub.Handle)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}

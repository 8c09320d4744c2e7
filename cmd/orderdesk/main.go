package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/restocinta/orderdesk/internal/adapter/auth"
	"github.com/restocinta/orderdesk/internal/adapter/cache"
	"github.com/restocinta/orderdesk/internal/adapter/client/invoice"
	"github.com/restocinta/orderdesk/internal/adapter/client/printer"
	"github.com/restocinta/orderdesk/internal/adapter/config"
	"github.com/restocinta/orderdesk/internal/adapter/feed"
	"github.com/restocinta/orderdesk/internal/adapter/handler/http"
	"github.com/restocinta/orderdesk/internal/adapter/logger"
	"github.com/restocinta/orderdesk/internal/adapter/metrics"
	"github.com/restocinta/orderdesk/internal/adapter/storage"
	"github.com/restocinta/orderdesk/internal/adapter/storage/repository"
	"github.com/restocinta/orderdesk/internal/core/port"
	"github.com/restocinta/orderdesk/internal/core/service"
	"go.uber.org/zap"
)

const resyncInterval = 30 * time.Second

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateway, err := invoice.NewClient(conf.Payment, log.Named("Payment"))
	if err != nil {
		log.Error("payment client creating error", zap.Error(err))
		return
	}

	renderer, err := printer.NewClient(conf.Printer, log.Named("Printer"))
	if err != nil {
		log.Error("printer client creating error", zap.Error(err))
		return
	}

	var menuCache port.MenuCache
	if conf.Redis.Addr != "" {
		menuCache = cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: conf.Redis.Addr}))
	}

	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)

	svc, err := service.NewService(repo, gateway, tokenService, menuCache,
		orderMetrics, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	hub := http.NewDashboardHub(log.Named("Dashboard"))

	autoPrinter, err := service.NewAutoPrinter(repo, renderer, hub, orderMetrics,
		port.PrintMode(conf.Printer.Mode), log.Named("AutoPrint"))
	if err != nil {
		log.Error("auto printer creating error", zap.Error(err))
		return
	}

	orderFeed, err := feed.NewFeed(db, log.Named("Feed"))
	if err != nil {
		log.Error("change feed creating error", zap.Error(err))
		return
	}

	go func() {
		if err := autoPrinter.Run(ctx, orderFeed, resyncInterval); err != nil {
			log.Error("auto printer stopped", zap.Error(err))
		}
	}()

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	webhookHandler, err := http.NewWebhookHandler(svc, conf.Payment.CallbackToken, log.Named("Webhook handler"))
	if err != nil {
		log.Error("webhook handler creating error", zap.Error(err))
		return
	}
	menuHandler, err := http.NewMenuHandler(svc, log.Named("Menu handler"))
	if err != nil {
		log.Error("menu handler creating error", zap.Error(err))
		return
	}
	staffHandler, err := http.NewStaffHandler(svc, log.Named("Staff handler"))
	if err != nil {
		log.Error("staff handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		orderHandler, webhookHandler, menuHandler, staffHandler, hub)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

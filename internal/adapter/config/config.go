package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Payment  *Payment
	Printer  *Printer
	Redis    *Redis
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Payment struct {
	HostString    string `env:"PAYMENT_ADDRESS"`
	APIKey        string `env:"PAYMENT_API_KEY"`
	CallbackToken string `env:"PAYMENT_CALLBACK_TOKEN"`
	CallbackURL   string `env:"PAYMENT_CALLBACK_URL"`
	SuccessURL    string `env:"PAYMENT_SUCCESS_URL"`
	Currency      string `env:"PAYMENT_CURRENCY" envDefault:"IDR"`
	Description   string `env:"PAYMENT_DESCRIPTION" envDefault:"Pembayaran Resto Cinta"`
	// Invoice lifetime in seconds.
	InvoiceDuration int `env:"PAYMENT_INVOICE_DURATION" envDefault:"3600"`
}

type Printer struct {
	HostString string `env:"PRINTER_ADDRESS"`
	Mode       string `env:"PRINT_MODE" envDefault:"thermal"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDRESS"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var payment Payment
	var printer Printer
	var redis Redis
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&payment.HostString, "p", `https://api.xendit.co`, "Payment gateway address")
	flag.StringVar(&printer.HostString, "r", "", "Receipt rendering service address")
	flag.StringVar(&redis.Addr, "c", "", "Redis address for the menu cache")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&printer)
	if err != nil {
		return nil, fmt.Errorf("error parsing printer config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Payment:  &payment,
		Printer:  &printer,
		Redis:    &redis,
		App:      &app,
	}

	return &config, nil
}

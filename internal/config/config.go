package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Kasir"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Tax struct {
		Mode              string  `envconfig:"TAX_MODE" default:"standard"`
		StandardRate      float64 `envconfig:"TAX_STANDARD_RATE" default:"0.10"`
		StandardThreshold int64   `envconfig:"TAX_STANDARD_THRESHOLD" default:"100000"`
	}

	Payment struct {
		MinInstallment int64 `envconfig:"PAYMENT_MIN_INSTALLMENT" default:"1000"`
	}

	Catalog struct {
		// Path to a semicolon separated product list loaded on top of the defaults.
		Path string `envconfig:"CATALOG_PATH"`
	}

	Ledger struct {
		TopCustomers int `envconfig:"LEDGER_TOP_CUSTOMERS" default:"5"`
	}

	Auth struct {
		// TerminalSecret signs register terminal tokens. Empty disables auth.
		TerminalSecret string `envconfig:"AUTH_TERMINAL_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}
}

// TaxEngine builds the tax engine described by the configuration.
func (c *Config) TaxEngine() (*tax.Engine, error) {
	mode, err := tax.ParseMode(c.Tax.Mode)
	if err != nil {
		return nil, err
	}

	standard, err := tax.NewStandard(c.Tax.StandardRate, c.Tax.StandardThreshold)
	if err != nil {
		return nil, err
	}

	return tax.New(mode, standard)
}

func (c *Config) PaymentProcessor() (*payment.Processor, error) {
	return payment.NewProcessor(c.Payment.MinInstallment)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.TaxEngine(); err != nil {
		return nil, fmt.Errorf("invalid tax config: %w", err)
	}

	if _, err := cfg.PaymentProcessor(); err != nil {
		return nil, fmt.Errorf("invalid payment config: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Cart     CartConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BULKCART_APP_ENV" required:"true"`
	Port         string `envconfig:"BULKCART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BULKCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BULKCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"BULKCART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BULKCART_REDIS_ADDR"`
	Password     string        `envconfig:"BULKCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"BULKCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BULKCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BULKCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BULKCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BULKCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BULKCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	Path string `envconfig:"BULKCART_CATALOG_PATH" default:"./data/categories.json"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"BULKCART_CART_TTL" default:"168h"`
}

type CheckoutConfig struct {
	InvoiceURL     string        `envconfig:"BULKCART_INVOICE_URL"`
	InvoiceTimeout time.Duration `envconfig:"BULKCART_INVOICE_TIMEOUT" default:"15s"`
	WhatsAppNumber string        `envconfig:"BULKCART_WHATSAPP_NUMBER"`
	DefaultMOQ     int           `envconfig:"BULKCART_DEFAULT_MOQ" default:"50"`
	DefaultMOQUnit string        `envconfig:"BULKCART_DEFAULT_MOQ_UNIT" default:"units"`
}

func (c CheckoutConfig) validate() error {
	if c.DefaultMOQ < 1 {
		return fmt.Errorf("%s must be at least 1", EnvDefaultMOQ)
	}
	if c.InvoiceURL == "" {
		return fmt.Errorf("%s is required", EnvInvoiceURL)
	}
	return nil
}

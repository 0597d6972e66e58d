package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	Env           string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPPort      string `yaml:"http_port" env:"HTTP_PORT" env-default:"8080"`
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"dynamodb"`
	// DefaultTaxRate is a percentage applied to new orders that omit one.
	DefaultTaxRate string `yaml:"default_tax_rate" env:"DEFAULT_TAX_RATE" env-default:"0"`

	DynamoDB `yaml:"dynamodb"`
	Tables   `yaml:"tables"`
}

type DynamoDB struct {
	Region          string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID     string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	// Endpoint is optional; e.g. http://dynamodb:8000 for DynamoDB Local.
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
}

type Tables struct {
	Orders      string `yaml:"orders" env:"ORDERS_TABLE" env-default:"eto_orders"`
	BOQs        string `yaml:"boqs" env:"BOQS_TABLE" env-default:"eto_boqs"`
	Drawings    string `yaml:"drawings" env:"DRAWINGS_TABLE" env-default:"eto_drawings"`
	SalesOrders string `yaml:"sales_orders" env:"SALES_ORDERS_TABLE" env-default:"eto_sales_orders"`
	WorkOrders  string `yaml:"work_orders" env:"WORK_ORDERS_TABLE" env-default:"eto_work_orders"`
	Journeys    string `yaml:"journeys" env:"JOURNEYS_TABLE" env-default:"eto_journeys"`
}

// Load reads CONFIG_PATH when set, then the environment, which wins.
func Load() (*Config, error) {
	var cfg Config
	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// TaxRate parses DefaultTaxRate; validate has already accepted it.
func (c *Config) TaxRate() decimal.Decimal {
	r, err := decimal.NewFromString(c.DefaultTaxRate)
	if err != nil {
		return decimal.Zero
	}
	return r
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	r, err := decimal.NewFromString(c.DefaultTaxRate)
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_TAX_RATE %q: %w", c.DefaultTaxRate, err)
	}
	if r.IsNegative() {
		return fmt.Errorf("DEFAULT_TAX_RATE must not be negative")
	}
	return nil
}

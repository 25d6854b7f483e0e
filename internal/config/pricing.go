package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingConfig carries the business-level pricing defaults that sit outside
// the per-tier rate book: transport and debris unit rates, quote markup,
// deposit percentages and the invoice tax rate.
type PricingConfig struct {
	TransportRatePerHour float64 `mapstructure:"transportRatePerHour"`
	DebrisRatePerYard    float64 `mapstructure:"debrisRatePerYard"`
	FinalMarkup          float64 `mapstructure:"finalMarkup"`
	DepositPercentage    float64 `mapstructure:"depositPercentage"`

	InvoiceTaxRate           float64 `mapstructure:"invoiceTaxRate"`
	InvoiceDepositPercentage float64 `mapstructure:"invoiceDepositPercentage"`

	// LoadoutMarkup is applied to loadouts created without an explicit
	// markup multiplier.
	LoadoutMarkup float64 `mapstructure:"loadoutMarkup"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TransportRatePerHour: 150,
		DebrisRatePerYard:    20,
		FinalMarkup:          1.15,
		DepositPercentage:    0.25,

		InvoiceTaxRate:           0.0875,
		InvoiceDepositPercentage: 0.25,

		LoadoutMarkup: 1.5,
	}
}

type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/brushworks/config") // Volume-mounted config
	v.AddConfigPath("/etc/brushworks")            // System config
	v.AddConfigPath(".")                          // Current directory (dev mode)

	v.SetEnvPrefix("BRUSHWORKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPricingConfig()
	v.SetDefault("pricing.transportRatePerHour", defaults.TransportRatePerHour)
	v.SetDefault("pricing.debrisRatePerYard", defaults.DebrisRatePerYard)
	v.SetDefault("pricing.finalMarkup", defaults.FinalMarkup)
	v.SetDefault("pricing.depositPercentage", defaults.DepositPercentage)
	v.SetDefault("pricing.invoiceTaxRate", defaults.InvoiceTaxRate)
	v.SetDefault("pricing.invoiceDepositPercentage", defaults.InvoiceDepositPercentage)
	v.SetDefault("pricing.loadoutMarkup", defaults.LoadoutMarkup)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PricingConfig
		if err := v.UnmarshalKey("pricing", &updated); err != nil {
			log.Printf("[pricing-config] reload failed: %v", err)
			return
		}
		if err := validatePricingConfig(updated); err != nil {
			log.Printf("[pricing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[pricing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPricingConfigHolder returns a holder pinned to cfg. Used by tests
// and callers that do not want file watching.
func NewStaticPricingConfigHolder(cfg PricingConfig) *PricingConfigHolder {
	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PricingConfigHolder) Get() PricingConfig {
	return h.current.Load().(PricingConfig)
}

func validatePricingConfig(cfg PricingConfig) error {
	if cfg.TransportRatePerHour < 0 {
		return errors.New("pricing.transportRatePerHour cannot be negative")
	}
	if cfg.DebrisRatePerYard < 0 {
		return errors.New("pricing.debrisRatePerYard cannot be negative")
	}
	if cfg.FinalMarkup <= 0 {
		return errors.New("pricing.finalMarkup must be positive")
	}
	if cfg.DepositPercentage < 0 || cfg.DepositPercentage > 1 {
		return errors.New("pricing.depositPercentage must be within [0, 1]")
	}
	if cfg.InvoiceDepositPercentage < 0 || cfg.InvoiceDepositPercentage > 1 {
		return errors.New("pricing.invoiceDepositPercentage must be within [0, 1]")
	}
	if cfg.InvoiceTaxRate < 0 {
		return errors.New("pricing.invoiceTaxRate cannot be negative")
	}
	if cfg.LoadoutMarkup <= 0 {
		return errors.New("pricing.loadoutMarkup must be positive")
	}
	return nil
}

package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FallbackPrice is assumed for any brand without a pricing rule.
const FallbackPrice = 5.99

// PriceRule maps a brand substring to a retail price. Rules are matched
// in order against the product brand; the first match wins.
type PriceRule struct {
	Brand string  `mapstructure:"brand"`
	Price float64 `mapstructure:"price"`
}

// PriceConfig is the ordered pricing rule set used by the score
// recompute job.
type PriceConfig struct {
	Rules []PriceRule `mapstructure:"rules"`
}

// PriceFor resolves the retail price for a brand.
func (c PriceConfig) PriceFor(brand string) float64 {
	for _, rule := range c.Rules {
		if strings.Contains(brand, rule.Brand) {
			return rule.Price
		}
	}
	return FallbackPrice
}

func DefaultPriceConfig() PriceConfig {
	return PriceConfig{
		Rules: []PriceRule{
			{Brand: "Pip & Nut", Price: 3.00},
			{Brand: "Whole Earth", Price: 3.00},
			{Brand: "Meridian", Price: 2.80},
			{Brand: "Sun-Pat", Price: 2.50},
			{Brand: "Manilife", Price: 3.99},
			{Brand: "Biona", Price: 3.50},
			{Brand: "Bulk", Price: 8.99},
			{Brand: "Skippy", Price: 2.70},
			{Brand: "Myprotein", Price: 6.99},
			{Brand: "Nutty Bruce", Price: 4.50},
			{Brand: "Tesco", Price: 1.60},
			{Brand: "Sainsbury's", Price: 1.60},
			{Brand: "Aldi Bramwells", Price: 1.25},
			{Brand: "Carley's", Price: 4.99},
			{Brand: "Yumello", Price: 3.50},
			{Brand: "Oatly", Price: 2.00},
			{Brand: "Alpro", Price: 1.80},
			{Brand: "Minor Figures", Price: 1.90},
			{Brand: "Rude Health", Price: 2.20},
			{Brand: "Califia Farms", Price: 2.50},
			{Brand: "Plenish", Price: 2.00},
			{Brand: "Koko", Price: 1.70},
			{Brand: "Provamel", Price: 2.10},
			{Brand: "Sproud", Price: 1.90},
			{Brand: "Vega", Price: 29.99},
			{Brand: "Garden of Life", Price: 32.00},
			{Brand: "Nutricis", Price: 18.00},
			{Brand: "PhD", Price: 22.00},
			{Brand: "Sunwarrior", Price: 28.00},
			{Brand: "Pulsin", Price: 12.00},
			{Brand: "Huel", Price: 45.00},
			{Brand: "Orgain", Price: 26.00},
			{Brand: "Naturya", Price: 14.00},
			{Brand: "THE PROTEIN WORKS", Price: 24.00},
		},
	}
}

// PriceConfigHolder serves the current pricing rules and hot-reloads
// them when the config file changes.
type PriceConfigHolder struct {
	current atomic.Value // holds PriceConfig
}

func NewPriceConfigHolder() (*PriceConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("prices")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/vottam/config")
	v.AddConfigPath("/etc/vottam")
	v.AddConfigPath(".")

	v.SetEnvPrefix("VOTTAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultPriceConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else {
		var loaded PriceConfig
		if err := v.UnmarshalKey("prices", &loaded); err != nil {
			return nil, err
		}
		if err := validatePriceConfig(loaded); err != nil {
			return nil, err
		}
		cfg = loaded
	}

	holder := &PriceConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PriceConfig
		if err := v.UnmarshalKey("prices", &updated); err != nil {
			log.Printf("[price-config] reload failed: %v", err)
			return
		}
		if err := validatePriceConfig(updated); err != nil {
			log.Printf("[price-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[price-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPriceConfigHolder wraps a fixed rule set with no file
// watching. Used where hot reload is unwanted.
func NewStaticPriceConfigHolder(cfg PriceConfig) *PriceConfigHolder {
	holder := &PriceConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PriceConfigHolder) Get() PriceConfig {
	return h.current.Load().(PriceConfig)
}

func validatePriceConfig(cfg PriceConfig) error {
	if len(cfg.Rules) == 0 {
		return errors.New("prices.rules cannot be empty")
	}
	for _, rule := range cfg.Rules {
		if strings.TrimSpace(rule.Brand) == "" {
			return errors.New("prices.rules entries need a brand")
		}
		if rule.Price < 0 {
			return errors.New("prices.rules entries cannot have negative prices")
		}
	}
	return nil
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/constellation/internal/validator"
)

const (
	DefaultStorageKey = "july12th-constellation"
	dateLayout        = "2006-01-02"
)

// Date is a calendar day at UTC midnight, written YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.ParseInLocation(dateLayout, string(text), time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

type Config struct {
	// StoreURL selects the persistence backend; empty means the sqlite
	// database in the config directory.
	StoreURL      string        `env:"STORE_URL"`
	StorageKey    string        `env:"STORAGE_KEY" envDefault:"july12th-constellation"`
	StartDate     Date          `env:"START_DATE" envDefault:"2025-06-27"`
	TotalDays     int           `env:"TOTAL_DAYS" envDefault:"16"`
	Name          string        `env:"NAME" envDefault:"SAMRIDDHI"`
	PatternFile   string        `env:"PATTERN_FILE"`
	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"33ms"`
	Seed          uint64        `env:"SEED" envDefault:"0"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() map[string]string {
	errs := make(map[string]string)
	if c.StorageKey == "" {
		errs["STORAGE_KEY"] = "must not be empty"
	}
	if c.TotalDays < 1 {
		errs["TOTAL_DAYS"] = "must be at least 1"
	}
	if c.FrameInterval < time.Millisecond {
		errs["FRAME_INTERVAL"] = "must be at least 1ms"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

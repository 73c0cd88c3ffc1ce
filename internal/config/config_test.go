package config

import (
	"errors"
	"testing"
	"time"

	"github.com/garrettladley/constellation/internal/validator"
)

func TestRead_Defaults(t *testing.T) {
	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.StorageKey != DefaultStorageKey {
		t.Errorf("StorageKey = %q, want %q", cfg.StorageKey, DefaultStorageKey)
	}
	if want := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC); !cfg.StartDate.Equal(want) {
		t.Errorf("StartDate = %v, want %v", cfg.StartDate, want)
	}
	if cfg.TotalDays != 16 {
		t.Errorf("TotalDays = %d, want 16", cfg.TotalDays)
	}
	if cfg.Name != "SAMRIDDHI" {
		t.Errorf("Name = %q, want SAMRIDDHI", cfg.Name)
	}
	if cfg.FrameInterval != 33*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 33ms", cfg.FrameInterval)
	}
	if cfg.StoreURL != "" || cfg.PatternFile != "" || cfg.Seed != 0 {
		t.Errorf("unexpected non-zero optional fields: %+v", cfg)
	}
}

func TestRead_Overrides(t *testing.T) {
	t.Setenv("STORE_URL", "memory://")
	t.Setenv("START_DATE", "2026-01-01")
	t.Setenv("TOTAL_DAYS", "7")
	t.Setenv("SEED", "42")
	t.Setenv("FRAME_INTERVAL", "16ms")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if cfg.StoreURL != "memory://" || cfg.TotalDays != 7 || cfg.Seed != 42 || cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.StartDate.String() != "2026-01-01" {
		t.Errorf("StartDate = %s, want 2026-01-01", cfg.StartDate)
	}
}

func TestRead_Invalid(t *testing.T) {
	t.Setenv("TOTAL_DAYS", "0")

	_, err := Read()
	var verr *validator.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Read() error = %v, want *validator.Error", err)
	}
	if _, ok := verr.Fields["TOTAL_DAYS"]; !ok {
		t.Errorf("Fields = %v, want TOTAL_DAYS", verr.Fields)
	}
}

func TestRead_BadDate(t *testing.T) {
	t.Setenv("START_DATE", "June 27")

	if _, err := Read(); err == nil {
		t.Error("Read() error = nil, want parse error")
	}
}

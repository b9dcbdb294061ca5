package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if !cfg.Cash.MinCashRecommended.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected min cash 200, got %s", cfg.Cash.MinCashRecommended)
	}
	if !cfg.Cash.MaxCashDivergence.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected max divergence 5, got %s", cfg.Cash.MaxCashDivergence)
	}
	if cfg.Cash.MinReasonLength != 10 {
		t.Fatalf("expected reason length 10, got %d", cfg.Cash.MinReasonLength)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "localhost:9092" {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("MAX_CASH_DIVERGENCE", "2.50")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected sqlite, got %q", cfg.Database.Driver)
	}
	if !cfg.Cash.MaxCashDivergence.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected 2.5, got %s", cfg.Cash.MaxCashDivergence)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("expected two brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("bad number", func(t *testing.T) {
		t.Setenv("ADJUSTMENT_MIN_REASON_LENGTH", "ten")
		_, err := Parse()
		if err == nil || !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env error, got %v", err)
		}
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		if _, err := Parse(); err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if got := cfg.Cart.TTL; got != 168*time.Hour {
		t.Fatalf("expected default cart TTL 168h, got %v", got)
	}

	if cfg.Checkout.DefaultMOQ != 50 {
		t.Fatalf("expected default MOQ 50, got %d", cfg.Checkout.DefaultMOQ)
	}

	if cfg.Checkout.DefaultMOQUnit != "units" {
		t.Fatalf("unexpected default MOQ unit %q", cfg.Checkout.DefaultMOQUnit)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_InvalidDefaultMOQ(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDefaultMOQ, "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected default MOQ below 1 to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvAppPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvInvoiceURL, "https://invoicing.example.com/api/send-invoice")
}

func TestLoad_MissingInvoiceURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvInvoiceURL, "")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing invoice url to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}

package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SJ_TOKEN", "v3.r.secret")
	t.Setenv("PER_PAGE", "")

	cfg := Load(missingEnvFile(t))

	if cfg.SuperJobToken != "v3.r.secret" {
		t.Errorf("SuperJobToken: got %q, want %q", cfg.SuperJobToken, "v3.r.secret")
	}
	if cfg.PerPage != 20 {
		t.Errorf("PerPage: got %d, want 20", cfg.PerPage)
	}
	if cfg.HHBaseURL != "https://api.hh.ru" {
		t.Errorf("HHBaseURL: got %q", cfg.HHBaseURL)
	}
	if cfg.SJTown != 4 {
		t.Errorf("SJTown: got %d, want 4", cfg.SJTown)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: unexpected error %v", err)
	}
}

func TestLoadOverridesAndBadInts(t *testing.T) {
	t.Setenv("SJ_TOKEN", "x")
	t.Setenv("PER_PAGE", "50")
	t.Setenv("RATE_LIMIT_MS", "not-a-number")

	cfg := Load(missingEnvFile(t))

	if cfg.PerPage != 50 {
		t.Errorf("PerPage: got %d, want 50", cfg.PerPage)
	}
	if cfg.RateLimitMs != 0 {
		t.Errorf("RateLimitMs: got %d, want fallback 0", cfg.RateLimitMs)
	}
}

func TestValidateMissingToken(t *testing.T) {
	t.Setenv("SJ_TOKEN", "")

	cfg := Load(missingEnvFile(t))
	if err := cfg.Validate(); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Validate: got %v, want ErrMissingToken", err)
	}
}

func TestValidatePaging(t *testing.T) {
	cfg := &Config{SuperJobToken: "x", PerPage: 100, MaxVacancies: 50}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when MAX_VACANCIES < PER_PAGE")
	}

	cfg.PerPage = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for PER_PAGE = 0")
	}
}

func TestDefaultLanguagesOrder(t *testing.T) {
	if len(DefaultLanguages) != 10 {
		t.Fatalf("DefaultLanguages: got %d entries, want 10", len(DefaultLanguages))
	}
	if DefaultLanguages[0] != "JavaScript" || DefaultLanguages[9] != "Shell" {
		t.Errorf("unexpected order: %v", DefaultLanguages)
	}
}

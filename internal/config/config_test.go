package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL == "" {
		t.Error("expected default API URL to be set")
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected default page size 10, got %d", cfg.PageSize)
	}
	if cfg.WorkingSetLimit != 1000 {
		t.Errorf("expected default working set limit 1000, got %d", cfg.WorkingSetLimit)
	}
}

func TestLoad_APIURLFromEnv(t *testing.T) {
	t.Setenv("AGENUS_API_URL", "api.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("expected scheme to be added, got %s", cfg.APIURL)
	}
}

func TestLoad_ExplicitScheme(t *testing.T) {
	t.Setenv("AGENUS_API_URL", "http://localhost:3333")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://localhost:3333" {
		t.Errorf("expected URL unchanged, got %s", cfg.APIURL)
	}
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("AGENUS_PAGE_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for page size 0")
	}
}

func TestLoad_WorkingSetLimitCapped(t *testing.T) {
	t.Setenv("AGENUS_WORKING_SET_LIMIT", "5000")

	if _, err := Load(); err == nil {
		t.Error("expected error for working set limit above 1000")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("AGENUS_TIMEOUT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RequestTimeout != 10 {
		t.Errorf("expected fallback timeout 10, got %d", cfg.RequestTimeout)
	}
}

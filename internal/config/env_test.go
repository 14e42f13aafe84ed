package config

import "testing"

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("IMPORT_MAX_UPLOAD_BYTES", "1048576")

	cfg := &Config{}
	setDefaults(cfg)
	if err := applyEnvOverrides(cfg); err != nil {
		t.Fatalf("applyEnvOverrides() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("server port = %q, want env override %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("max open conns = %d, want env override 50", cfg.Database.MaxOpenConns)
	}
	if cfg.Import.MaxUploadBytes != 1048576 {
		t.Errorf("max upload bytes = %d, want env override 1048576", cfg.Import.MaxUploadBytes)
	}
}

func TestApplyEnvOverridesLeavesUnsetFields(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	before := cfg.Database.MaxOpenConns

	if err := applyEnvOverrides(cfg); err != nil {
		t.Fatalf("applyEnvOverrides() error = %v", err)
	}
	if cfg.Database.MaxOpenConns != before {
		t.Errorf("max open conns changed to %d without an env var, want %d", cfg.Database.MaxOpenConns, before)
	}
}

func TestApplyEnvOverridesRejectsBadInteger(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")

	cfg := &Config{}
	setDefaults(cfg)
	if err := applyEnvOverrides(cfg); err == nil {
		t.Fatal("applyEnvOverrides() with a non-numeric integer env var should fail")
	}
}

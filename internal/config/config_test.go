package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STAGE", StageDev)
	t.Setenv("PORT", "7171")
	t.Setenv("SEED", "99")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7171 {
		t.Fatalf("expected port: %d\tgot: %d", 7171, cfg.Port)
	}
	if cfg.Seed != 99 {
		t.Fatalf("expected seed: %d\tgot: %d", 99, cfg.Seed)
	}
	if cfg.Stage != StageDev {
		t.Fatalf("expected stage: %s\tgot: %s", StageDev, cfg.Stage)
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("STAGE", StageDev)
	os.Unsetenv("MIGRATIONS_DIR")
	t.Cleanup(func() { os.Unsetenv("MIGRATIONS_DIR") })

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("MIGRATIONS_DIR=file://elsewhere\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MigrationsDir != "file://elsewhere" {
		t.Fatalf("expected migrations dir from .env\tgot: %s", cfg.MigrationsDir)
	}
}

func TestLoadInvalidStage(t *testing.T) {
	t.Setenv("STAGE", "staging")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected an error for an unknown stage")
	}
}

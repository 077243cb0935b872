package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"KARTA_TEST_PORT" envDefault:"123"`
}

type requiredEnvTestConfig struct {
	URL string `env:"KARTA_TEST_REQUIRED_URL,required"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("KARTA_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRequiredMissing(t *testing.T) {
	var cfg requiredEnvTestConfig
	t.Setenv("KARTA_TEST_REQUIRED_URL", "")
	os.Unsetenv("KARTA_TEST_REQUIRED_URL")

	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected missing required variable error")
	}
}

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load missing dotenv: %v", err)
	}
}

func TestLoadDotEnvPrefersEarlierFilesAndExistingEnv(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	base := filepath.Join(dir, ".env")
	mustWriteFile(t, local, "KARTA_TEST_DOTENV_A=local\n")
	mustWriteFile(t, base, "KARTA_TEST_DOTENV_A=base\nKARTA_TEST_DOTENV_B=base\nKARTA_TEST_DOTENV_C=base\n")

	t.Setenv("KARTA_TEST_DOTENV_C", "process")
	t.Setenv("KARTA_TEST_DOTENV_A", "")
	t.Setenv("KARTA_TEST_DOTENV_B", "")
	os.Unsetenv("KARTA_TEST_DOTENV_A")
	os.Unsetenv("KARTA_TEST_DOTENV_B")

	if err := LoadDotEnv(local, base); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("KARTA_TEST_DOTENV_A"); got != "local" {
		t.Fatalf("A = %q, want %q", got, "local")
	}
	if got := os.Getenv("KARTA_TEST_DOTENV_B"); got != "base" {
		t.Fatalf("B = %q, want %q", got, "base")
	}
	if got := os.Getenv("KARTA_TEST_DOTENV_C"); got != "process" {
		t.Fatalf("C = %q, want %q", got, "process")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

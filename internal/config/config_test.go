package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listenAddr: ":9000"
  apiToken: "secret"
store:
  backend: redis
  redisAddr: "localhost:6379"
  redisDB: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.ListenAddr != ":9000" {
		t.Fatalf("unexpected listenAddr: %s", cfg.Server.ListenAddr)
	}
	if cfg.Server.APIToken != "secret" {
		t.Fatalf("unexpected apiToken: %s", cfg.Server.APIToken)
	}
	if cfg.Store.Backend != "redis" || cfg.Store.RedisDB != 2 {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "server: {}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.ListenAddr != ":8000" {
		t.Fatalf("expected default listenAddr, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("expected default backend memory, got %s", cfg.Store.Backend)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: dynamo\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartinez/hipolito/internal/knowledge"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Level() != knowledge.LevelBasic {
		t.Errorf("level = %q, want basico", cfg.Chat.Level)
	}
	if cfg.Web.Addr != ":3000" {
		t.Errorf("web addr = %q, want :3000", cfg.Web.Addr)
	}
	if cfg.Chat.Generative {
		t.Error("generative should default to off")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "chat:\n  level: avanzado\n  generative: true\nweb:\n  addr: \":8080\"\n  site_dir: ./site\ndb:\n  path: /tmp/test.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Level() != knowledge.LevelAdvanced {
		t.Errorf("level = %q, want avanzado", cfg.Chat.Level)
	}
	if !cfg.Chat.Generative {
		t.Error("generative should be on")
	}
	if cfg.Web.Addr != ":8080" || cfg.Web.SiteDir != "./site" {
		t.Errorf("web = %+v", cfg.Web)
	}
	if cfg.DB.Path != "/tmp/test.db" {
		t.Errorf("db path = %q", cfg.DB.Path)
	}
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("chat:\n  level: experto\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HIPOLITO_LEVEL", "intermedio")
	t.Setenv("HIPOLITO_WEB_ADDR", ":9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Level() != knowledge.LevelIntermediate {
		t.Errorf("level = %q, want intermedio", cfg.Chat.Level)
	}
	if cfg.Web.Addr != ":9000" {
		t.Errorf("web addr = %q, want :9000", cfg.Web.Addr)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pipeline.OCRModel != "gpt-4o" {
		t.Fatalf("OCRModel = %q", cfg.Pipeline.OCRModel)
	}
	if cfg.Pipeline.CorrectionModel != "gpt-3.5-turbo" {
		t.Fatalf("CorrectionModel = %q", cfg.Pipeline.CorrectionModel)
	}
	if cfg.Pipeline.ChunkSize != 2000 {
		t.Fatalf("ChunkSize = %d", cfg.Pipeline.ChunkSize)
	}
	if cfg.Pipeline.MaxTokens != 4096 {
		t.Fatalf("MaxTokens = %d", cfg.Pipeline.MaxTokens)
	}
	if cfg.Pipeline.ShortFieldMaxTokens != 100 {
		t.Fatalf("ShortFieldMaxTokens = %d", cfg.Pipeline.ShortFieldMaxTokens)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Server.Port)
	}
}

func TestNewManager_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `pipeline:
  ocr_model: gpt-4o-mini
  chunk_size: 500
server:
  port: "9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	cfg := mgr.Get()

	if cfg.Pipeline.OCRModel != "gpt-4o-mini" {
		t.Fatalf("OCRModel = %q, want override", cfg.Pipeline.OCRModel)
	}
	if cfg.Pipeline.ChunkSize != 500 {
		t.Fatalf("ChunkSize = %d, want override", cfg.Pipeline.ChunkSize)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("Port = %q, want override", cfg.Server.Port)
	}
	// Unset keys keep their defaults.
	if cfg.Pipeline.CorrectionModel != DefaultCorrectionModel {
		t.Fatalf("CorrectionModel = %q, want default", cfg.Pipeline.CorrectionModel)
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	if _, err := APIKey(); err == nil {
		t.Fatal("APIKey() must fail when the variable is unset")
	}

	t.Setenv(APIKeyEnv, "sk-test")
	key, err := APIKey()
	if err != nil {
		t.Fatalf("APIKey() error = %v", err)
	}
	if key != "sk-test" {
		t.Fatalf("APIKey() = %q", key)
	}
}

package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/draftml-dev/draftml/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Server.Host != DefaultHost || cfg.Server.Port != DefaultPort {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestLoadValidFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"name": "mysite",
		"title": "My Site",
		"output": "public",
		"server": {"port": 8080},
		"build": {"minify": true},
		"publish": {"bucket": "b", "region": "us-east-1", "prefix": "www"}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "mysite" || cfg.Output != "public" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("host = %q, default should fill missing field", cfg.Server.Host)
	}
	if !cfg.Build.Minify {
		t.Error("minify not loaded")
	}
	if cfg.Publish.Bucket != "b" || cfg.Publish.Region != "us-east-1" {
		t.Errorf("publish = %+v", cfg.Publish)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"malformed json", `{"name": `, "C002"},
		{"port out of range", `{"server": {"port": 99999}}`, "C004"},
		{"bucket without region", `{"publish": {"bucket": "b"}}`, "C005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			var se *errors.Error
			if !stderrors.As(err, &se) {
				t.Fatalf("error type %T", err)
			}
			if se.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", se.Code, tt.wantCode)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := Default()
	if got := cfg.Addr(); got != "localhost:3000" {
		t.Errorf("Addr() = %q", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SBOM2PDF_CONFIG", "")
	t.Setenv("SBOM2PDF_HOST", "")
	t.Setenv("SBOM2PDF_PORT", "")
	t.Setenv("SBOM2PDF_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != "0.0.0.0:3001" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
	if cfg.Server.Debug {
		t.Fatalf("debug should default to false")
	}
	if !cfg.PDF.Compress {
		t.Fatalf("compression should default to on")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  host: 127.0.0.1\n  port: 8080\npdf:\n  creator: acme\n  compress: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SBOM2PDF_CONFIG", path)
	t.Setenv("SBOM2PDF_HOST", "")
	t.Setenv("SBOM2PDF_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
	if cfg.PDF.Creator != "acme" || cfg.PDF.Compress {
		t.Fatalf("pdf config = %+v", cfg.PDF)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SBOM2PDF_CONFIG", path)
	t.Setenv("SBOM2PDF_HOST", "localhost")
	t.Setenv("SBOM2PDF_PORT", "9000")
	t.Setenv("SBOM2PDF_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != "localhost:9000" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
	if !cfg.Server.Debug {
		t.Fatalf("debug override not applied")
	}
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("SBOM2PDF_CONFIG", "")
	t.Setenv("SBOM2PDF_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

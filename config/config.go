// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config is the full service configuration.
type Config struct {
	Server Server `yaml:"server"`
	PDF    PDF    `yaml:"pdf"`
}

// Server holds the listen address and debug flag.
type Server struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

// PDF holds document metadata and output options passed to the renderer.
type PDF struct {
	Creator  string `yaml:"creator"`
	Producer string `yaml:"producer"`
	Compress bool   `yaml:"compress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{Host: "0.0.0.0", Port: 3001},
		PDF:    PDF{Creator: "sbom-to-pdf", Producer: "sbom-to-pdf", Compress: true},
	}
}

// Load reads the YAML file named by SBOM2PDF_CONFIG when set, then applies
// SBOM2PDF_HOST, SBOM2PDF_PORT and SBOM2PDF_DEBUG overrides.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("SBOM2PDF_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if host := os.Getenv("SBOM2PDF_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SBOM2PDF_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return cfg, fmt.Errorf("invalid SBOM2PDF_PORT %q: %w", port, err)
		}
		cfg.Server.Port = n
	}
	if debug := os.Getenv("SBOM2PDF_DEBUG"); debug != "" {
		cfg.Server.Debug = strings.EqualFold(debug, "true")
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

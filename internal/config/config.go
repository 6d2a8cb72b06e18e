package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/utils"
)

// Config holds the server-level settings. Values come from an optional YAML
// file with env vars taking precedence; everything has a workable default so
// the server boots with no config at all.
type Config struct {
	Port             string   `yaml:"port"`
	Mode             string   `yaml:"mode"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	TraceExporter    string   `yaml:"trace_exporter"`
}

func defaults() Config {
	return Config{
		Port: "8080",
		Mode: "development",
		CORSAllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
	}
}

// Load reads CONFIG_FILE (default config.yaml, silently skipped when absent)
// and overlays environment variables.
func Load(log *logger.Logger) (Config, error) {
	cfg := defaults()

	path := utils.GetEnv("CONFIG_FILE", "config.yaml", log)
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.Mode = utils.GetEnv("LOG_MODE", cfg.Mode, log)
	cfg.TraceExporter = utils.GetEnv("TRACE_EXPORTER", cfg.TraceExporter, log)
	if origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log); origins != "" {
		cfg.CORSAllowOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, trimmed)
			}
		}
	}
	return cfg, nil
}

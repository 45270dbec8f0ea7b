package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Server struct {
	Port              string `json:"port" yaml:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec" yaml:"request_timeout_sec"`
}

type Ticker struct {
	BaseURL    string `json:"base_url" yaml:"base_url"`
	TimeoutSec int    `json:"timeout_sec" yaml:"timeout_sec"`
	UserAgent  string `json:"user_agent" yaml:"user_agent"`
}

type Display struct {
	Locale   string `json:"locale" yaml:"locale"`
	Timezone string `json:"timezone" yaml:"timezone"`
}

type Log struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

type Config struct {
	Server  Server  `json:"server" yaml:"server"`
	Ticker  Ticker  `json:"ticker" yaml:"ticker"`
	Display Display `json:"display" yaml:"display"`
	Log     Log     `json:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 15},
		Ticker: Ticker{
			BaseURL:    "https://www.mercadobitcoin.net",
			TimeoutSec: 10,
			UserAgent:  "crypto-monitor/1.0",
		},
		Display: Display{Locale: "pt-BR", Timezone: "America/Sao_Paulo"},
		Log:     Log{Level: "info", Format: "json"},
	}
}

// Load reads the config file at path. If path is empty, config.json in the
// working directory is used when present; a missing file yields defaults.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
// Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, cfg)
	default:
		return json.Unmarshal(b, cfg)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
	}
	if v := os.Getenv("TICKER_BASE_URL"); v != "" { cfg.Ticker.BaseURL = v }
	if v := os.Getenv("TICKER_TIMEOUT_SEC"); v != "" {
		var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Ticker.TimeoutSec = x }
	}
	if v := os.Getenv("TICKER_USER_AGENT"); v != "" { cfg.Ticker.UserAgent = v }
	if v := os.Getenv("QUOTE_LOCALE"); v != "" { cfg.Display.Locale = v }
	if v := os.Getenv("QUOTE_TIMEZONE"); v != "" { cfg.Display.Timezone = v }
	if v := os.Getenv("LOG_LEVEL"); v != "" { cfg.Log.Level = strings.ToLower(v) }
	if v := os.Getenv("LOG_FORMAT"); v != "" { cfg.Log.Format = strings.ToLower(v) }
}

// Resolve parses the display locale and timezone.
func (d Display) Resolve() (language.Tag, *time.Location, error) {
	return ParseDisplay(d.Locale, d.Timezone)
}

// ParseDisplay parses a BCP 47 locale and an IANA timezone name.
func ParseDisplay(locale, timezone string) (language.Tag, *time.Location, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return language.Und, nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	loc, err := time.LoadLocation(strings.TrimSpace(timezone))
	if err != nil {
		return language.Und, nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return tag, loc, nil
}

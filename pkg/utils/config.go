package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHTTPAddr          = ":8080"
	DefaultGrpcAddr          = ":9090"
	DefaultPokeAPIURL        = "https://pokeapi.co"
	DefaultFunTranslationURL = "https://api.funtranslations.com"
	DefaultUpstreamTimeout   = 10 * time.Second
)

type Config struct {
	HTTPAddr string         `yaml:"http_addr"`
	GrpcAddr string         `yaml:"grpc_addr"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Log      LogConfig      `yaml:"log"`
}

type UpstreamConfig struct {
	PokeAPIURL         string        `yaml:"pokeapi_url"`
	FunTranslationsURL string        `yaml:"funtranslations_url"`
	Timeout            time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Env   string `yaml:"env"`   // development | production
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`  // optional rotated log file
}

func DefaultConfig() Config {
	return Config{
		HTTPAddr: DefaultHTTPAddr,
		GrpcAddr: DefaultGrpcAddr,
		Upstream: UpstreamConfig{
			PokeAPIURL:         DefaultPokeAPIURL,
			FunTranslationsURL: DefaultFunTranslationURL,
			Timeout:            DefaultUpstreamTimeout,
		},
		Log: LogConfig{
			Env:   "development",
			Level: "info",
		},
	}
}

// Load builds the config from defaults, then the YAML file named by
// POKEDEX_CONFIG (if any), then individual POKEDEX_* env vars.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("POKEDEX_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.HTTPAddr, "POKEDEX_HTTP_ADDR")
	setString(&cfg.GrpcAddr, "POKEDEX_GRPC_ADDR")
	setString(&cfg.Upstream.PokeAPIURL, "POKEDEX_POKEAPI_URL")
	setString(&cfg.Upstream.FunTranslationsURL, "POKEDEX_FUNTRANSLATIONS_URL")
	setString(&cfg.Log.Env, "POKEDEX_ENV")
	setString(&cfg.Log.Level, "POKEDEX_LOG_LEVEL")
	setString(&cfg.Log.File, "POKEDEX_LOG_FILE")

	// if parse fails, keep whatever we already had
	if v := strings.TrimSpace(os.Getenv("POKEDEX_HTTP_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Upstream.Timeout = d
		}
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) normalize() {
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	if c.GrpcAddr == "" {
		c.GrpcAddr = DefaultGrpcAddr
	}
	if c.Upstream.PokeAPIURL == "" {
		c.Upstream.PokeAPIURL = DefaultPokeAPIURL
	}
	if c.Upstream.FunTranslationsURL == "" {
		c.Upstream.FunTranslationsURL = DefaultFunTranslationURL
	}
	c.Upstream.PokeAPIURL = strings.TrimRight(c.Upstream.PokeAPIURL, "/")
	c.Upstream.FunTranslationsURL = strings.TrimRight(c.Upstream.FunTranslationsURL, "/")
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = DefaultUpstreamTimeout
	}
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RateLimitConfig bounds the per-client request rate on the HTTP surface.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OpenAIConfig configures the OpenAI-backed embedding provider. The API key
// comes from APIKeyEnv, or from AWS Secrets Manager when APIKeySecret names
// a secret id.
type OpenAIConfig struct {
	APIKeyEnv    string `yaml:"api_key_env"`
	APIKeySecret string `yaml:"api_key_secret"`
	Model        string `yaml:"model"`
	Dimensions   int    `yaml:"dimensions"`
}

// HashConfig configures the deterministic offline embedding provider.
type HashConfig struct {
	Dimensions int `yaml:"dimensions"`
}

// EmbedderConfig selects and configures the embedding provider. The same
// configuration must drive both the reference builder and the service.
type EmbedderConfig struct {
	Type   string       `yaml:"type"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Hash   HashConfig   `yaml:"hash"`
}

// Config is the root process configuration.
type Config struct {
	BindAddr  string          `yaml:"bind_addr"`
	StorePath string          `yaml:"store_path"`
	StaticDir string          `yaml:"static_dir"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Embedder  EmbedderConfig  `yaml:"embedder"`
}

// Load reads the config from path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(configBytes, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.BindAddr == "" {
		cfg.BindAddr = ":8090"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "custom/ref_embeddings.json"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "openai"
	}
	if cfg.Embedder.OpenAI.APIKeyEnv == "" {
		cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedder.OpenAI.Model == "" {
		cfg.Embedder.OpenAI.Model = "text-embedding-ada-002"
	}
	if cfg.Embedder.OpenAI.Dimensions == 0 {
		cfg.Embedder.OpenAI.Dimensions = 1536
	}
	if cfg.Embedder.Hash.Dimensions == 0 {
		cfg.Embedder.Hash.Dimensions = 64
	}
}

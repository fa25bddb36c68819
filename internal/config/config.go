package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider      string   `toml:"provider"`
	Model         string   `toml:"model"`
	APIKey        string   `toml:"api_key"`
	BaseURL       string   `toml:"base_url"`
	MaxTokens     int      `toml:"max_tokens"`
	Temperature   float32  `toml:"temperature"`
	TopP          float32  `toml:"top_p"`
	TopK          int      `toml:"top_k"`
	StopSequences []string `toml:"stop_sequences"`
}

type GraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type SourceConfig struct {
	TitleColumn    string `toml:"title_column"`
	AbstractColumn string `toml:"abstract_column"`
}

type PromptConfig struct {
	// Template overrides the built-in extraction prompt. It must keep the
	// two %s verbs (title, abstract) and the %s for the type vocabulary.
	Template string `toml:"template"`
}

type LoggerConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // "console" or "json"
	LogFile    string `toml:"log_file"`
	MaxSize    int    `toml:"max_size"` // megabytes
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"` // days
	Compress   bool   `toml:"compress"`
}

type Config struct {
	LLM    LLMConfig    `toml:"llm"`
	Graph  GraphConfig  `toml:"graph"`
	Source SourceConfig `toml:"source"`
	Prompt PromptConfig `toml:"prompt"`
	Logger LoggerConfig `toml:"logger"`
}

// Default returns the configuration used when no file is present. The
// generation defaults (4000 tokens, temperature 0.1) keep extraction output
// long enough for dense abstracts and near-deterministic.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "claude",
			Model:       "claude-3-5-haiku-latest",
			MaxTokens:   4000,
			Temperature: 0.1,
		},
		Graph: GraphConfig{
			URI: "bolt://localhost:7687",
		},
		Source: SourceConfig{
			TitleColumn:    "title",
			AbstractColumn: "abstract",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML config file on top of the defaults, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides file-level settings with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("GRAPH_URI"); v != "" {
		c.Graph.URI = v
	}
	if v := os.Getenv("GRAPH_USER"); v != "" {
		c.Graph.User = v
	}
	if v := os.Getenv("GRAPH_PASSWORD"); v != "" {
		c.Graph.Password = v
	}
}

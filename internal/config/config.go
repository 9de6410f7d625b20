// Package config loads and hot-reloads application configuration.
//
// Stages never read viper directly: callers take an immutable snapshot via
// Get() and pass the relevant section into each constructor.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable holding the OpenAI credential.
const APIKeyEnv = "OPENAI_API_KEY"

// Config is the full application configuration.
type Config struct {
	Pipeline Pipeline `mapstructure:"pipeline" yaml:"pipeline"`
	Server   Server   `mapstructure:"server" yaml:"server"`
}

// Pipeline holds the model and chunking settings for a document run.
// Values are fixed at run start; a reload only affects subsequent runs.
type Pipeline struct {
	// OCRModel is the vision-capable model used for page transcription.
	OCRModel string `mapstructure:"ocr_model" yaml:"ocr_model"`
	// CorrectionModel is the text model used for spelling correction and
	// field extraction.
	CorrectionModel string `mapstructure:"correction_model" yaml:"correction_model"`
	// MaxTokens is the output-token ceiling for transcription, correction
	// and structured extraction calls.
	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens"`
	// ShortFieldMaxTokens is the ceiling for single-value extractors
	// (location, presenting party).
	ShortFieldMaxTokens int `mapstructure:"short_field_max_tokens" yaml:"short_field_max_tokens"`
	// ChunkSize is the maximum character length of a correction chunk.
	// Chunks may cut mid-word; page text is corrected chunk by chunk.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
	// RequestTimeoutSeconds bounds a single model call at the transport
	// level. There is no retry on top of it.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`
}

// Server holds HTTP server settings.
type Server struct {
	Host        string `mapstructure:"host" yaml:"host"`
	Port        string `mapstructure:"port" yaml:"port"`
	MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("pipeline", defaults.Pipeline)
	viper.SetDefault("server", defaults.Server)

	// Environment variables with DICTAMEN_ prefix
	viper.SetEnvPrefix("DICTAMEN")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.dictamen")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// APIKey resolves the OpenAI credential from the environment.
// Callers must fail fast at startup when it is absent.
func APIKey() (string, error) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s is not set", APIKeyEnv)
	}
	return key, nil
}

package config

// Default pipeline constants. These mirror the values the templates were
// tuned against; all are overridable via config file or environment.
const (
	DefaultOCRModel        = "gpt-4o"
	DefaultCorrectionModel = "gpt-3.5-turbo"
	DefaultMaxTokens       = 4096
	DefaultShortFieldMax   = 100
	DefaultChunkSize       = 2000
	DefaultRequestTimeout  = 120

	DefaultHost        = "127.0.0.1"
	DefaultPort        = "8080"
	DefaultMaxUploadMB = 50
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: Pipeline{
			OCRModel:              DefaultOCRModel,
			CorrectionModel:       DefaultCorrectionModel,
			MaxTokens:             DefaultMaxTokens,
			ShortFieldMaxTokens:   DefaultShortFieldMax,
			ChunkSize:             DefaultChunkSize,
			RequestTimeoutSeconds: DefaultRequestTimeout,
		},
		Server: Server{
			Host:        DefaultHost,
			Port:        DefaultPort,
			MaxUploadMB: DefaultMaxUploadMB,
		},
	}
}

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jmrestrepo/dictamen/internal/api"
	"github.com/jmrestrepo/dictamen/internal/config"
	"github.com/jmrestrepo/dictamen/internal/extract"
	"github.com/jmrestrepo/dictamen/internal/pipeline"
	"github.com/jmrestrepo/dictamen/internal/providers"
	"github.com/jmrestrepo/dictamen/internal/workflow"
	"github.com/jmrestrepo/dictamen/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "dictamen",
	Short: "Transcribe and summarize scanned disability rulings",
	Long: `Dictamen turns scanned Colombian disability rulings into structured
summaries using vision-model OCR and field extraction.

The pipeline includes:
  - Page rasterization and vision-model transcription
  - Chunked spelling correction of the raw transcript
  - Field extraction per document type and workflow category
  - Deterministic Spanish summary templates`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.dictamen/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "dictamen home directory (default: ~/.dictamen)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)

	// Set output format and load .env before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
		_ = godotenv.Load()
	}

	rootCmd.AddCommand(versionCmd)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// stack wires the pipeline end to end for CLI commands.
type stack struct {
	cfg       *config.Config
	processor *pipeline.Processor
	extractor *extract.Service
	service   *workflow.Service
}

func newStack(logger *slog.Logger) (*stack, error) {
	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	apiKey, err := config.APIKey()
	if err != nil {
		return nil, err
	}

	client := providers.NewOpenAIClient(providers.OpenAIConfig{
		APIKey:  apiKey,
		Timeout: time.Duration(cfg.Pipeline.RequestTimeoutSeconds) * time.Second,
	})

	processor := pipeline.New(client, cfg.Pipeline, logger)
	extractor := extract.New(client, cfg.Pipeline, logger)
	router := workflow.NewRouter(processor, extractor, logger)
	service := workflow.NewService(workflow.NewStore(), router, logger)

	return &stack{
		cfg:       cfg,
		processor: processor,
		extractor: extractor,
		service:   service,
	}, nil
}

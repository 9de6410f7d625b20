// Package pipeline turns a PDF into one page-marked document text: per page,
// rasterize → transcribe with the vision model → correct spelling per chunk.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmrestrepo/dictamen/internal/config"
	"github.com/jmrestrepo/dictamen/internal/prompts/correction"
	"github.com/jmrestrepo/dictamen/internal/prompts/ocr"
	"github.com/jmrestrepo/dictamen/internal/providers"
	"github.com/jmrestrepo/dictamen/internal/rasterize"
)

// ProgressFunc reports pages completed out of the total after each page.
// It is an observability hook only; the pipeline never depends on it.
type ProgressFunc func(done, total int)

// Processor runs the page pipeline for one document at a time.
type Processor struct {
	client providers.ChatClient
	cfg    config.Pipeline
	logger *slog.Logger

	// Rasterizer converts PDF bytes to ordered page images.
	// Overridable in tests; defaults to rasterize.Rasterize.
	Rasterizer func(ctx context.Context, pdfBytes []byte) ([]rasterize.Page, error)
}

// New creates a Processor. The config snapshot is fixed for the processor's
// lifetime; reloads only affect processors created afterwards.
func New(client providers.ChatClient, cfg config.Pipeline, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		client:     client,
		cfg:        cfg,
		logger:     logger,
		Rasterizer: rasterize.Rasterize,
	}
}

// TranscribePage sends one page image to the vision model and returns the
// raw transcription. No post-processing.
func (p *Processor) TranscribePage(ctx context.Context, page rasterize.Page) (string, error) {
	res, err := p.client.Chat(ctx, &providers.ChatRequest{
		Model:     p.cfg.OCRModel,
		MaxTokens: p.cfg.MaxTokens,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: ocr.SystemPrompt},
			{Role: providers.RoleUser, Content: ocr.UserPrompt, Images: [][]byte{page.PNG}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("transcribe page %d: %w", page.Index+1, err)
	}
	return res.Content, nil
}

// CorrectText corrects spelling chunk by chunk, in order. Each corrected
// chunk is appended with a trailing newline, matching the document layout
// the templates expect.
func (p *Processor) CorrectText(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	for i, chunk := range Chunk(text, p.cfg.ChunkSize) {
		res, err := p.client.Chat(ctx, &providers.ChatRequest{
			Model:     p.cfg.CorrectionModel,
			MaxTokens: p.cfg.MaxTokens,
			Messages: []providers.Message{
				{Role: providers.RoleSystem, Content: correction.SystemPrompt},
				{Role: providers.RoleUser, Content: fmt.Sprintf(correction.UserPromptTemplate, chunk)},
			},
		})
		if err != nil {
			return "", fmt.Errorf("correct chunk %d: %w", i+1, err)
		}
		sb.WriteString(res.Content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Document runs the full page pipeline: for each page in rasterization
// order, transcribe then correct, and append under a "Página N:" marker.
// Pages are processed strictly sequentially - the page order of the final
// text is a correctness requirement. The first failure aborts the whole
// document; no partial state survives.
func (p *Processor) Document(ctx context.Context, pdfBytes []byte, progress ProgressFunc) (string, error) {
	pages, err := p.Rasterizer(ctx, pdfBytes)
	if err != nil {
		return "", err
	}

	p.logger.Info("processing document", "pages", len(pages),
		"ocr_model", p.cfg.OCRModel, "correction_model", p.cfg.CorrectionModel)

	var sb strings.Builder
	for _, page := range pages {
		raw, err := p.TranscribePage(ctx, page)
		if err != nil {
			return "", err
		}

		corrected, err := p.CorrectText(ctx, raw)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", page.Index+1, err)
		}

		fmt.Fprintf(&sb, "\n\nPágina %d:\n%s", page.Index+1, corrected)
		p.logger.Debug("page processed", "page", page.Index+1, "of", len(pages))

		if progress != nil {
			progress(page.Index+1, len(pages))
		}
	}

	return sb.String(), nil
}

// Package extract sends the full document text to the text model with a
// task-specific instruction and returns the extracted value: a single
// scalar, a free-text block, or a schema-validated structured record.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmrestrepo/dictamen/internal/config"
	"github.com/jmrestrepo/dictamen/internal/prompts/junta"
	"github.com/jmrestrepo/dictamen/internal/prompts/recurso"
	"github.com/jmrestrepo/dictamen/internal/providers"
)

// ErrSchemaParse indicates a structured extractor's model output could not
// be parsed or validated against its schema. There is no repair or retry:
// it propagates as a document-level failure, distinguishable in logs from
// plain service errors.
var ErrSchemaParse = errors.New("structured output does not match schema")

// Service runs field extractors against a full document text.
type Service struct {
	client providers.ChatClient
	cfg    config.Pipeline
	logger *slog.Logger
}

// New creates an extraction Service with a fixed config snapshot.
func New(client providers.ChatClient, cfg config.Pipeline, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// chat sends one system+user exchange to the text model and returns the
// trimmed response.
func (s *Service) chat(ctx context.Context, system, user string, maxTokens int) (string, error) {
	res, err := s.client.Chat(ctx, &providers.ChatRequest{
		Model:     s.cfg.CorrectionModel,
		MaxTokens: maxTokens,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: system},
			{Role: providers.RoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Content), nil
}

// JuntaLocation extracts the department or city where the board convened.
func (s *Service) JuntaLocation(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, junta.LocationSystemPrompt,
		fmt.Sprintf(junta.LocationUserPromptTemplate, text), s.cfg.ShortFieldMaxTokens)
}

// AnalysisConclusions extracts the board's analysis and conclusions block.
func (s *Service) AnalysisConclusions(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, junta.AnalysisSystemPrompt,
		fmt.Sprintf(junta.AnalysisUserPromptTemplate, text), s.cfg.MaxTokens)
}

// MedicalConcepts extracts the medical concepts and specific tests sections.
func (s *Service) MedicalConcepts(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, junta.ConceptsSystemPrompt,
		fmt.Sprintf(junta.ConceptsUserPromptTemplate, text), s.cfg.MaxTokens)
}

// AppealMotivation cleans an appeal down to the text grounding the
// disagreement: footers and verbatim law citations removed, upper-case
// blocks lowered.
func (s *Service) AppealMotivation(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, recurso.MotivationSystemPrompt,
		fmt.Sprintf(recurso.MotivationUserPromptTemplate, text), s.cfg.MaxTokens)
}

// AppealPresenter identifies who presents the appeal, formatted per the
// fixed person/entity rules.
func (s *Service) AppealPresenter(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, recurso.PresenterSystemPrompt,
		fmt.Sprintf(recurso.PresenterUserPromptTemplate, text), s.cfg.ShortFieldMaxTokens)
}

// AppealPresenterName extracts only the full name of the person filing.
func (s *Service) AppealPresenterName(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, recurso.NameSystemPrompt,
		fmt.Sprintf(recurso.NameUserPromptTemplate, text), s.cfg.ShortFieldMaxTokens)
}

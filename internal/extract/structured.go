package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jmrestrepo/dictamen/internal/prompts/firstopp"
	"github.com/jmrestrepo/dictamen/internal/prompts/origin"
	"github.com/jmrestrepo/dictamen/internal/prompts/pcl"
	"github.com/jmrestrepo/dictamen/internal/providers"
)

// PCLInfo extracts the structured PCL ruling record.
func (s *Service) PCLInfo(ctx context.Context, text string) (*pcl.Result, error) {
	return structured[pcl.Result](ctx, s, "pcl_info",
		pcl.SystemPrompt, fmt.Sprintf(pcl.UserPromptTemplate, text), pcl.ExtractionSchema)
}

// FirstOpportunityInfo extracts the structured first-opportunity
// qualification record.
func (s *Service) FirstOpportunityInfo(ctx context.Context, text string) (*firstopp.Result, error) {
	return structured[firstopp.Result](ctx, s, "first_opportunity_info",
		firstopp.SystemPrompt, fmt.Sprintf(firstopp.UserPromptTemplate, text), firstopp.ExtractionSchema)
}

// OriginInfo extracts the structured origin-determination record.
func (s *Service) OriginInfo(ctx context.Context, text string) (*origin.Result, error) {
	return structured[origin.Result](ctx, s, "first_opportunity_origin_info",
		origin.SystemPrompt, fmt.Sprintf(origin.UserPromptTemplate, text), origin.ExtractionSchema)
}

// structured runs one structured extraction: model call → JSON recovery →
// schema validation → unmarshal. Renderers may assume schema-valid input;
// anything else fails here with ErrSchemaParse.
func structured[T any](ctx context.Context, s *Service, name, system, user string, schema map[string]any) (*T, error) {
	content, err := s.chat(ctx, system, user, s.cfg.MaxTokens)
	if err != nil {
		return nil, err
	}

	raw, err := providers.ParseStructuredJSON(content)
	if err != nil {
		s.logger.Error("structured extraction returned unparseable output",
			"extractor", name, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaParse, name, err)
	}

	if err := validateSchema(schema, raw); err != nil {
		s.logger.Error("structured extraction failed schema validation",
			"extractor", name, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaParse, name, err)
	}

	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaParse, name, err)
	}
	return &result, nil
}

// validateSchema validates parsed JSON against the extractor's schema.
func validateSchema(schema map[string]any, parsed json.RawMessage) error {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(parsed, &doc); err != nil {
		return fmt.Errorf("failed to decode JSON for validation: %w", err)
	}

	return compiled.Validate(doc)
}

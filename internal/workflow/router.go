package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmrestrepo/dictamen/internal/extract"
	"github.com/jmrestrepo/dictamen/internal/pipeline"
	"github.com/jmrestrepo/dictamen/internal/render"
)

// Category selects the evaluation workflow.
type Category string

const (
	CategoryPCL    Category = "pcl"
	CategoryOrigin Category = "origen"
)

// DocType selects the document stage within a category.
type DocType string

const (
	DocTypeFirstOpportunity DocType = "primera_oportunidad"
	DocTypeJuntaRegional    DocType = "junta_regional"
	DocTypeAppeal           DocType = "recurso"
)

// ErrUnsupported marks a category/document-type pair with no workflow.
var ErrUnsupported = errors.New("unsupported document type for category")

// GenericFailureMessage is the only failure text shown to end users,
// regardless of what actually went wrong.
const GenericFailureMessage = "El documento no se pudo procesar correctamente debido a problemas de escaneo o calidad del archivo. Intenta subir una versión más legible."

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPCL, CategoryOrigin:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ParseDocType validates a document type string.
func ParseDocType(s string) (DocType, error) {
	switch DocType(s) {
	case DocTypeFirstOpportunity, DocTypeJuntaRegional, DocTypeAppeal:
		return DocType(s), nil
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

// Supported reports whether a category/document-type pair has a workflow.
func Supported(category Category, docType DocType) bool {
	if category == CategoryPCL {
		switch docType {
		case DocTypeFirstOpportunity, DocTypeJuntaRegional, DocTypeAppeal:
			return true
		}
	}
	return category == CategoryOrigin && docType == DocTypeFirstOpportunity
}

// Router dispatches a processed document to the extractor and renderer for
// its category and document type.
type Router struct {
	processor *pipeline.Processor
	extractor *extract.Service
	logger    *slog.Logger
}

// NewRouter creates a router over a page processor and a field extractor.
func NewRouter(processor *pipeline.Processor, extractor *extract.Service, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{processor: processor, extractor: extractor, logger: logger}
}

// Process runs the full pipeline for one document: rasterize, transcribe and
// correct every page, extract the fields for the workflow, and render the
// template. Pages are processed strictly in order and the first hard error
// aborts the run.
func (r *Router) Process(ctx context.Context, category Category, docType DocType, pdf []byte, progress pipeline.ProgressFunc) (string, error) {
	if !Supported(category, docType) {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupported, category, docType)
	}

	text, err := r.processor.Document(ctx, pdf, progress)
	if err != nil {
		return "", err
	}

	r.logger.Info("document transcribed",
		"category", category,
		"doc_type", docType,
		"chars", len(text))

	switch {
	case category == CategoryPCL && docType == DocTypeFirstOpportunity:
		info, err := r.extractor.FirstOpportunityInfo(ctx, text)
		if err != nil {
			return "", err
		}
		return render.FirstOpportunity(info), nil

	case category == CategoryPCL && docType == DocTypeJuntaRegional:
		info, err := r.extractor.PCLInfo(ctx, text)
		if err != nil {
			return "", err
		}
		return render.PCL(info), nil

	case category == CategoryPCL && docType == DocTypeAppeal:
		// The presenter is identified from the cleaned motivation, not the
		// raw transcript: the same text the rendered quote carries.
		motivation, err := r.extractor.AppealMotivation(ctx, text)
		if err != nil {
			return "", err
		}
		entity, err := r.extractor.AppealPresenter(ctx, motivation)
		if err != nil {
			return "", err
		}
		return render.Appeal(entity, motivation), nil

	case category == CategoryOrigin && docType == DocTypeFirstOpportunity:
		info, err := r.extractor.OriginInfo(ctx, text)
		if err != nil {
			return "", err
		}
		return render.Origin(info), nil
	}

	return "", fmt.Errorf("%w: %s/%s", ErrUnsupported, category, docType)
}

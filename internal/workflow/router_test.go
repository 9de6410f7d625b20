package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmrestrepo/dictamen/internal/config"
	"github.com/jmrestrepo/dictamen/internal/extract"
	"github.com/jmrestrepo/dictamen/internal/pipeline"
	"github.com/jmrestrepo/dictamen/internal/providers"
	"github.com/jmrestrepo/dictamen/internal/rasterize"
)

// newTestService wires a full workflow service over a scripted chat client
// and a one-page in-memory rasterizer.
func newTestService(mock *providers.MockClient) *Service {
	cfg := config.DefaultConfig().Pipeline
	proc := pipeline.New(mock, cfg, nil)
	proc.Rasterizer = func(ctx context.Context, pdfBytes []byte) ([]rasterize.Page, error) {
		return []rasterize.Page{{Index: 0, PNG: []byte("img")}}, nil
	}
	router := NewRouter(proc, extract.New(mock, cfg, nil), nil)
	return NewService(NewStore(), router, nil)
}

func TestService_JuntaRegionalFlow(t *testing.T) {
	// One page: transcription, correction, then the structured extraction.
	mock := providers.NewMockClient(
		"texto crudo de la página",
		"texto corregido de la página",
		`{"ubicacion": "Antioquia", "numero_dictamen": "12345", "diagnosticos": ["Lumbalgia"], "pcl_total": "28.0"}`,
	)
	s := newTestService(mock)

	run, err := s.Upload(CategoryPCL, DocTypeJuntaRegional, []byte("%PDF"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	run, err = s.Process(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if run.Status != StatusDone {
		t.Fatalf("Status = %q, want %q (message: %q)", run.Status, StatusDone, run.Message)
	}
	if !strings.Contains(run.Result, "La Junta Regional de Calificación de Invalidez de Antioquia mediante dictamen N° 12345") {
		t.Fatalf("Result does not carry the rendered template:\n%s", run.Result)
	}
	if run.Progress != 1 {
		t.Fatalf("Progress = %v, want 1", run.Progress)
	}
}

func TestService_OriginFlow(t *testing.T) {
	mock := providers.NewMockClient(
		"texto crudo",
		"texto corregido",
		`{"tipo_entidad": "EPS", "nombre_entidad": "Sura", "diagnosticos": [
			{"nombre": "Hernia discal", "origen": "Enfermedad laboral"},
			{"nombre": "Lumbalgia", "origen": "Enfermedad laboral"},
			{"nombre": "Tendinitis", "origen": "Enfermedad común"}
		]}`,
	)
	s := newTestService(mock)

	run, _ := s.Upload(CategoryOrigin, DocTypeFirstOpportunity, []byte("%PDF"))
	run, err := s.Process(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := "La Entidad Prestadora de Salud Sura calificó las patologías: Hernia discal, Lumbalgia como de origen enfermedad laboral; Tendinitis como de origen enfermedad común."
	if !strings.Contains(run.Result, want) {
		t.Fatalf("Result = %q, want substring %q", run.Result, want)
	}
}

func TestService_AppealFlow(t *testing.T) {
	// After the page pipeline, the appeal runs two extractions: the cleaned
	// motivation and then the presenting party.
	mock := providers.NewMockClient(
		"texto crudo",
		"texto corregido",
		"el dictamen no valoró la historia clínica completa",
		"la Administradora de Riesgos Laborales Positiva",
	)
	s := newTestService(mock)

	run, _ := s.Upload(CategoryPCL, DocTypeAppeal, []byte("%PDF"))
	run, err := s.Process(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := `Motivación de la inconformidad: la Administradora de Riesgos Laborales Positiva manifiesta su inconformidad frente al dictamen con base en:

"el dictamen no valoró la historia clínica completa"`
	if run.Result != want {
		t.Fatalf("Result = %q, want %q", run.Result, want)
	}

	// The presenter extraction reads the cleaned motivation, never the raw
	// page-marked transcript.
	reqs := mock.Requests()
	if len(reqs) != 4 {
		t.Fatalf("expected 4 requests, got %d", len(reqs))
	}
	presenterInput := reqs[3].Messages[1].Content
	if !strings.Contains(presenterInput, "el dictamen no valoró la historia clínica completa") {
		t.Fatalf("presenter request does not carry the motivation: %q", presenterInput)
	}
	if strings.Contains(presenterInput, "Página 1") {
		t.Fatalf("presenter request must not carry the raw transcript: %q", presenterInput)
	}
}

func TestService_UploadRejectsUnsupportedCombination(t *testing.T) {
	s := newTestService(providers.NewMockClient())

	for _, docType := range []DocType{DocTypeJuntaRegional, DocTypeAppeal} {
		if _, err := s.Upload(CategoryOrigin, docType, []byte("%PDF")); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("Upload(origen, %s) error = %v, want ErrUnsupported", docType, err)
		}
	}
}

func TestService_FailureYieldsGenericMessage(t *testing.T) {
	mock := &providers.MockClient{Err: providers.ErrExternalService}
	s := newTestService(mock)

	run, _ := s.Upload(CategoryPCL, DocTypeJuntaRegional, []byte("%PDF"))
	run, err := s.Process(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Process() error = %v, failure must resolve the run instead", err)
	}

	if run.Status != StatusFailed {
		t.Fatalf("Status = %q, want %q", run.Status, StatusFailed)
	}
	if run.Message != GenericFailureMessage {
		t.Fatalf("Message = %q, want the generic failure message", run.Message)
	}
	if run.Result != "" {
		t.Fatalf("failed run must have no result, got %q", run.Result)
	}
}

func TestService_SchemaFailureYieldsGenericMessage(t *testing.T) {
	mock := providers.NewMockClient(
		"texto crudo",
		"texto corregido",
		"esto no es json",
	)
	s := newTestService(mock)

	run, _ := s.Upload(CategoryPCL, DocTypeJuntaRegional, []byte("%PDF"))
	run, err := s.Process(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if run.Status != StatusFailed || run.Message != GenericFailureMessage {
		t.Fatalf("run = %#v, want failed with generic message", run)
	}
}

func TestService_ProcessTwiceFails(t *testing.T) {
	mock := providers.NewMockClient(
		"texto crudo",
		"texto corregido",
		`{"ubicacion": "Antioquia"}`,
	)
	s := newTestService(mock)

	run, _ := s.Upload(CategoryPCL, DocTypeJuntaRegional, []byte("%PDF"))
	if _, err := s.Process(context.Background(), run.ID); err != nil {
		t.Fatalf("first Process() error = %v", err)
	}
	if _, err := s.Process(context.Background(), run.ID); err == nil {
		t.Fatal("second Process() must fail: run is terminal")
	}
}

func TestService_ProcessUnknownRun(t *testing.T) {
	s := newTestService(providers.NewMockClient())
	if _, err := s.Process(context.Background(), "missing"); err == nil {
		t.Fatal("Process() on unknown run must fail")
	}
}

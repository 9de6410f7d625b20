package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jmrestrepo/dictamen/internal/workflow"
)

// routes builds the HTTP mux for the server.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/documents", s.handleUpload)
	mux.HandleFunc("POST /api/documents/{id}/process", s.handleProcess)
	mux.HandleFunc("GET /api/documents/{id}", s.handleGet)
	mux.HandleFunc("GET /api/documents/{id}/result", s.handleResult)
	return mux
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// UploadResponse is the response for a successful document upload.
type UploadResponse struct {
	ID       string            `json:"id"`
	Category workflow.Category `json:"category"`
	DocType  workflow.DocType  `json:"doc_type"`
	Status   workflow.Status   `json:"status"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	category, err := workflow.ParseCategory(r.FormValue("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	docType, err := workflow.ParseDocType(r.FormValue("doc_type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return
	}

	pdf, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read uploaded file: %v", err))
		return
	}

	run, err := s.service.Upload(category, docType, pdf)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, UploadResponse{
		ID:       run.ID,
		Category: run.Category,
		DocType:  run.DocType,
		Status:   run.Status,
	})
}

// ProcessResponse is the response for a finished processing call.
type ProcessResponse struct {
	ID      string          `json:"id"`
	Status  workflow.Status `json:"status"`
	Result  string          `json:"result,omitempty"`
	Message string          `json:"message,omitempty"`
}

// handleProcess runs the pipeline synchronously and responds when the run
// reaches a terminal state. Failure detail stays in the logs; clients only
// ever see the generic message.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.service.Get(id); !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("run %s not found", id))
		return
	}

	run, err := s.service.Process(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	resp := ProcessResponse{ID: run.ID, Status: run.Status, Result: run.Result, Message: run.Message}
	if run.Status == workflow.StatusFailed {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, ok := s.service.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("run %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handleResult returns the rendered text verbatim so it can be copied as-is.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, ok := s.service.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("run %s not found", id))
		return
	}
	if run.Status != workflow.StatusDone {
		writeError(w, http.StatusConflict, fmt.Sprintf("run %s is %s", id, run.Status))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, run.Result)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// Package web provides a read-only browser for the run archive.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Safa30/Lab-2-CSE366/internal/db"
	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

type archive interface {
	ListRuns(ctx context.Context) ([]model.RunSummary, error)
	GetRun(ctx context.Context, runID string) (model.RunSummary, error)
	RunSteps(ctx context.Context, runID string) ([]model.StepRecord, error)
}

// Server provides the archive viewer handlers and state.
type Server struct {
	store archive
}

// NewServer creates a new archive viewer over the store.
func NewServer(store archive) (*Server, error) {
	return &Server{store: store}, nil
}

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return decimal.NewFromFloat(v).StringFixed(2)
	},
}

// Routes returns the router for the archive viewer.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /runs/{id}", s.handleRun)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	runs, err := s.store.ListRuns(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "index.html", runs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type runPage struct {
	Summary model.RunSummary
	Steps   []model.StepRecord
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/run.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id := r.PathValue("id")
	summary, err := s.store.GetRun(r.Context(), id)
	if errors.Is(err, db.ErrRunNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	steps, err := s.store.RunSteps(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "run.html", runPage{Summary: summary, Steps: steps}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

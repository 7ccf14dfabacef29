package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/animesh-sketch/red-flag-identifier/internal/ai"
	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
	"github.com/animesh-sketch/red-flag-identifier/internal/config"
	"github.com/animesh-sketch/red-flag-identifier/internal/providers"
	"github.com/animesh-sketch/red-flag-identifier/internal/redact"
)

// Server is the HTTP front end around the analysis pipeline.
type Server struct {
	cfg config.Config
	log *zap.SugaredLogger
}

// New creates a Server.
func New(cfg config.Config, log *zap.SugaredLogger) *Server {
	return &Server{cfg: cfg, log: log}
}

// Handler returns the HTTP routes: GET / serves the embedded page,
// POST /analyze runs an analysis.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	return mux
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Infow("starting server", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

type analyzeRequest struct {
	Text     string `json:"text"`
	Mode     string `json:"mode"`
	Severity string `json:"severity"`
	APIKey   string `json:"api_key"`
}

type analyzeResponse struct {
	Total    int                `json:"total"`
	Findings []analysis.Finding `json:"findings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "No text provided. Paste text or upload a file.")
		return
	}

	mode := analysis.Mode(req.Mode)
	if mode == "" {
		mode = analysis.ModeRulesOnly
	}
	severity := analysis.Severity(req.Severity)
	if severity == "" {
		severity = analysis.SeverityLow
	}

	apiKey := config.APIKey(req.APIKey)
	if mode.RequiresAI() && apiKey == "" {
		s.writeError(w, http.StatusBadRequest,
			"API key required for AI analysis. Use rules-only mode or provide an API key.")
		return
	}

	analysisReq := analysis.Request{
		Text:        req.Text,
		Mode:        mode,
		MinSeverity: severity,
	}

	if mode.RequiresAI() {
		completer, err := providers.New(s.cfg.Provider, s.cfg.Model, apiKey)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts := []ai.Option{
			ai.WithMaxChunkChars(s.cfg.ChunkChars),
			ai.WithDelay(time.Duration(s.cfg.DelaySecs) * time.Second),
		}
		if s.cfg.Redact {
			opts = append(opts, ai.WithRedactor(redact.Transcript))
		}
		analysisReq.Remote = ai.New(completer, opts...)
	}

	start := time.Now()
	findings, err := analysis.Analyze(r.Context(), analysisReq)
	if err != nil {
		if r.Context().Err() == context.Canceled {
			return
		}
		s.log.Errorw("analysis failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Infow("analysis complete",
		"mode", mode, "findings", len(findings), "elapsed", time.Since(start))

	if findings == nil {
		findings = []analysis.Finding{}
	}
	s.writeJSON(w, http.StatusOK, analyzeResponse{Total: len(findings), Findings: findings})
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("writing response", "error", err)
	}
}

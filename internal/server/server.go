// Package server is the HTTP boundary: it resolves the request shape,
// hands plain text to the engine and serializes the result. All state it
// touches is read-only, so handlers need no synchronization.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/cors"
	"github.com/scamshield/scamshield/internal/config"
	"github.com/scamshield/scamshield/internal/extract"
	"github.com/scamshield/scamshield/internal/logging"
	"github.com/scamshield/scamshield/internal/observability"
	"github.com/scamshield/scamshield/internal/rules"
	"github.com/scamshield/scamshield/internal/testcases"
	"go.uber.org/zap"
)

type Server struct {
	engine         *rules.Engine
	extractor      *extract.Registry
	log            *zap.Logger
	maxUploadBytes int64

	metrics     *observability.Metrics
	analysisLog *logging.AnalysisLogger

	handler      http.Handler
	requestCount uint64
}

func New(cfg *config.Config, engine *rules.Engine, extractor *extract.Registry, log *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		engine:         engine,
		extractor:      extractor,
		log:            log,
		maxUploadBytes: cfg.Limits.MaxUploadBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/get-scam-patterns", s.handleScamPatterns)
	mux.HandleFunc("/test-cases", s.handleTestCases)
	mux.HandleFunc("/healthz", s.handleHealthz)

	// The browser client is served from a different origin.
	s.handler = cors.AllowAll().Handler(mux)

	return s
}

func (s *Server) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

func (s *Server) SetAnalysisLogger(logger *logging.AnalysisLogger) {
	s.analysisLog = logger
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRequest("/analyze", time.Since(start))
	}()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	requestID := s.newRequestID()

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("analysis panicked",
				zap.String("request_id", requestID), zap.Any("panic", rec))
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", rec))
		}
	}()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	input, err := resolveInput(r)
	if err != nil {
		var shapeErr *InputShapeError
		if errors.As(err, &shapeErr) {
			writeError(w, http.StatusBadRequest, shapeErr.Message)
			return
		}
		s.log.Error("analysis failed",
			zap.String("request_id", requestID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	text := input.text
	if input.kind == inputFile {
		extracted, extractErr := s.extractor.Extract(input.data, input.filename)
		if extractErr != nil {
			s.metrics.ObserveExtractionFailure(extract.Kind(input.filename))
			s.writeRecord(requestID, input, rules.Report{}, http.StatusBadRequest, start)
			writeError(w, http.StatusBadRequest, msgNoContent)
			return
		}
		text = extracted
	}

	report := s.engine.Analyze(text)

	s.writeRecord(requestID, input, report, http.StatusOK, start)
	s.metrics.ObserveAnalysis(input.kind.String(), report.IsLegit, report.Warnings)
	s.log.Debug("analysis complete",
		zap.String("request_id", requestID),
		zap.String("source", input.kind.String()),
		zap.Int("score", report.Score),
		zap.Bool("is_legit", report.IsLegit))

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleScamPatterns(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRequest("/get-scam-patterns", time.Since(start))
	}()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"patterns":             s.engine.Patterns(),
		"pattern_descriptions": rules.CategoryDescriptions(),
	})
}

func (s *Server) handleTestCases(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRequest("/test-cases", time.Since(start))
	}()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{
		"legit":  testcases.Legit(),
		"scams":  testcases.Scams(),
		"tricky": testcases.Tricky(),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeRecord(requestID string, input analyzeInput, report rules.Report, status int, start time.Time) {
	if s.analysisLog == nil {
		return
	}
	_ = s.analysisLog.Write(logging.Record{
		Timestamp:  time.Now().UTC(),
		RequestID:  requestID,
		Source:     input.kind.String(),
		Filename:   input.filename,
		Score:      report.Score,
		IsLegit:    report.IsLegit,
		Warnings:   report.Warnings,
		StatusCode: status,
		DurationMS: time.Since(start).Milliseconds(),
	})
}

func (s *Server) newRequestID() string {
	var buf [12]byte
	if _, err := rand.Read(buf[:]); err == nil {
		return hex.EncodeToString(buf[:])
	}
	value := atomic.AddUint64(&s.requestCount, 1)
	return fmt.Sprintf("req-%d", value)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

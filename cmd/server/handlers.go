package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raagdna/raagdna/pkg/logger"
	"github.com/raagdna/raagdna/pkg/models"
	"github.com/raagdna/raagdna/pkg/raagdna"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	service raagdna.Service
	config  *ServerConfig
	log     raagdna.Logger
	started time.Time
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	DBPath         string
	AllowedOrigins []string
}

// NewServer creates a new server instance
func NewServer(service raagdna.Service, config *ServerConfig) *Server {
	return &Server{
		service: service,
		config:  config,
		log:     logger.GetLogger(),
		started: time.Now(),
	}
}

func countTokens(sequence string) int {
	return len(raagdna.Tokenize(sequence))
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("Failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response
func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "RaagDNA API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":     "GET /health",
			"metrics":    "GET /api/health/metrics",
			"listRagas":  "GET /api/raagas",
			"searchRaga": "GET /api/raagas?q={query}",
			"getRaga":    "GET /api/raagas/{name}",
			"identify":   "POST /api/identify",
			"classify":   "POST /api/classify",
		},
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleMetrics handles GET /api/health/metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, MetricsResponse{
		Status:       "healthy",
		CatalogSize:  len(s.service.ListRagas()),
		DatabasePath: s.config.DBPath,
		UptimeSec:    int64(time.Since(s.started).Seconds()),
	})
}

// handleRagas handles GET /api/raagas (list, or fuzzy search with ?q=)
func (s *Server) handleRagas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Only GET is supported")
		return
	}

	var ragas []models.Raga
	if query := r.URL.Query().Get("q"); query != "" {
		ragas = s.service.SearchRagas(query)
	} else {
		ragas = s.service.ListRagas()
	}

	dtos := make([]RagaDTO, len(ragas))
	for i, raga := range ragas {
		dtos[i] = ragaToDTO(raga)
	}

	s.respondJSON(w, http.StatusOK, ListRagasResponse{
		Ragas: dtos,
		Count: len(dtos),
	})
}

// handleRaga handles GET /api/raagas/{name}
func (s *Server) handleRaga(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Only GET is supported")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/raagas/")
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		s.respondError(w, http.StatusBadRequest, "Raga name is required")
		return
	}

	raga, err := s.service.GetRaga(name)
	if err != nil {
		s.log.Warnf("Raga not found: %s", name)
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("Raga %q not found", name))
		return
	}

	s.respondJSON(w, http.StatusOK, ragaToDTO(*raga))
}

// handleIdentify handles POST /api/identify
func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Only POST is supported")
		return
	}

	var req IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Errorf("Failed to decode request: %v", err)
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topN := DefaultTopN
	if req.TopN != nil {
		topN = *req.TopN
	}

	matches, err := s.service.TopMatches(req.Sequence, topN)
	if err != nil {
		s.log.Errorf("Failed to rank matches: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to rank matches")
		return
	}

	dtos := make([]MatchResultDTO, len(matches))
	for i, m := range matches {
		dtos[i] = MatchResultDTO{
			RagaName:     m.RagaName,
			Combined:     m.Combined,
			ExactPartial: m.ExactPartial,
			EditDistance: m.EditDistance,
			SetOverlap:   m.SetOverlap,
		}
	}

	prefixLabels := s.service.PrefixMatches(req.Sequence)
	prefixes := make([]PrefixMatchDTO, len(prefixLabels))
	for i, label := range prefixLabels {
		prefixes[i] = PrefixMatchDTO{
			RagaName:  label.RagaName,
			Direction: label.Direction,
		}
	}

	s.respondJSON(w, http.StatusOK, IdentifyResponse{
		Matches:       dtos,
		Count:         len(dtos),
		PrefixMatches: prefixes,
	})
}

// handleClassify handles POST /api/classify
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Only POST is supported")
		return
	}

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Errorf("Failed to decode request: %v", err)
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	counts := s.service.ClassifySequence(req.Sequence)
	out := make(map[string]int, len(counts))
	for class, count := range counts {
		out[class.String()] = count
	}

	s.respondJSON(w, http.StatusOK, ClassifyResponse{
		Counts:     out,
		TokenCount: countTokens(req.Sequence),
	})
}

func ragaToDTO(raga models.Raga) RagaDTO {
	return RagaDTO{
		Name:         raga.Name,
		Arohana:      raga.Arohana,
		Avarohana:    raga.Avarohana,
		Description:  raga.Description,
		SwaraSummary: raga.SwaraSummary,
	}
}

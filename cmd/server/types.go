package main

import "fmt"

// Sequence limit constants for validation
const (
	// MaxSequenceTokens bounds the number of swaras accepted in a single
	// query; reference sequences in the catalog stay under twenty.
	MaxSequenceTokens = 256

	// MaxTopN bounds how many ranked matches a caller can request.
	MaxTopN = 100

	// DefaultTopN is used when a request omits top_n.
	DefaultTopN = 5
)

// IdentifyRequest is the request body for POST /api/identify
type IdentifyRequest struct {
	// Sequence is a whitespace-separated swara string, e.g. "Sa Re Ga Ma' Pa"
	Sequence string `json:"sequence"`

	// TopN limits the number of ranked matches (default DefaultTopN)
	TopN *int `json:"top_n,omitempty"`
}

// Validate checks if the request is valid
func (r *IdentifyRequest) Validate() error {
	if r.TopN != nil && *r.TopN < 0 {
		return fmt.Errorf("top_n must be >= 0, got %d", *r.TopN)
	}
	if r.TopN != nil && *r.TopN > MaxTopN {
		return fmt.Errorf("top_n too large: %d (maximum: %d)", *r.TopN, MaxTopN)
	}
	if n := countTokens(r.Sequence); n > MaxSequenceTokens {
		return fmt.Errorf("too many swaras: %d (maximum: %d)", n, MaxSequenceTokens)
	}
	return nil
}

// ClassifyRequest is the request body for POST /api/classify
type ClassifyRequest struct {
	Sequence string `json:"sequence"`
}

// Validate checks if the request is valid
func (r *ClassifyRequest) Validate() error {
	if n := countTokens(r.Sequence); n > MaxSequenceTokens {
		return fmt.Errorf("too many swaras: %d (maximum: %d)", n, MaxSequenceTokens)
	}
	return nil
}

// MatchResultDTO represents a single ranked match in API responses
type MatchResultDTO struct {
	RagaName     string  `json:"raga_name"`
	Combined     float64 `json:"combined_score"`
	ExactPartial float64 `json:"exact_partial_score"`
	EditDistance float64 `json:"edit_distance_score"`
	SetOverlap   float64 `json:"set_overlap_score"`
}

// PrefixMatchDTO reports a reference sequence that is an exact prefix
// of the query
type PrefixMatchDTO struct {
	RagaName  string `json:"raga_name"`
	Direction string `json:"direction"`
}

// IdentifyResponse is the response for POST /api/identify
type IdentifyResponse struct {
	Matches []MatchResultDTO `json:"matches"`
	Count   int              `json:"count"`

	// PrefixMatches is a supplementary exact-match indicator; it does
	// not influence the fuzzy ranking above.
	PrefixMatches []PrefixMatchDTO `json:"prefix_matches"`
}

// ClassifyResponse is the response for POST /api/classify
type ClassifyResponse struct {
	Counts     map[string]int `json:"counts"`
	TokenCount int            `json:"token_count"`
}

// RagaDTO represents a catalog entry in API responses
type RagaDTO struct {
	Name         string `json:"name"`
	Arohana      string `json:"arohana"`
	Avarohana    string `json:"avarohana"`
	Description  string `json:"description,omitempty"`
	SwaraSummary string `json:"swara_summary,omitempty"`
}

// ListRagasResponse is the response for GET /api/raagas
type ListRagasResponse struct {
	Ragas []RagaDTO `json:"raagas"`
	Count int       `json:"count"`
}

// MetricsResponse provides server health and catalog metrics
type MetricsResponse struct {
	Status       string `json:"status"`
	CatalogSize  int    `json:"catalog_size"`
	DatabasePath string `json:"database_path,omitempty"`
	UptimeSec    int64  `json:"uptime_sec"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

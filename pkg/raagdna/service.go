package raagdna

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raagdna/raagdna/pkg/catalogdata"
	"github.com/raagdna/raagdna/pkg/logger"
	"github.com/raagdna/raagdna/pkg/models"
	"github.com/raagdna/raagdna/pkg/raagdna/storage"
)

// Combined-score weights. The exact/partial coverage measure dominates
// on purpose: the engine is biased toward how much of the input the
// reference pattern accounts for.
const (
	weightExactPartial = 0.5
	weightEditDistance = 0.3
	weightSetOverlap   = 0.2
)

// raagService is the default implementation of the Service interface.
type raagService struct {
	catalog *Catalog
	storage Storage
	log     Logger
}

// NewService builds the identification engine. The catalog is resolved
// once here and is immutable afterwards: an explicit table via
// WithCatalog wins, then a Storage/WithDBPath sqlite backend (seeded
// from the built-in table on first run), then the built-in table.
func NewService(opts ...Option) (Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	svc := &raagService{log: cfg.Logger}

	switch {
	case cfg.Catalog != nil:
		svc.catalog = NewCatalog(cfg.Catalog)

	case cfg.Storage != nil || cfg.DBPath != "":
		stor := cfg.Storage
		if stor == nil {
			var err error
			stor, err = storage.NewSQLiteStorage(cfg.DBPath)
			if err != nil {
				return nil, fmt.Errorf("failed to create storage: %w", err)
			}
		}
		ragas, err := loadOrSeed(stor, cfg.Logger)
		if err != nil {
			stor.Close()
			return nil, err
		}
		svc.storage = stor
		svc.catalog = NewCatalog(ragas)

	default:
		svc.catalog = NewCatalog(catalogdata.Ragas())
	}

	cfg.Logger.Infof("Catalog ready with %d raagas", svc.catalog.Len())
	return svc, nil
}

// loadOrSeed returns the stored catalog, writing the built-in table
// into empty storage first.
func loadOrSeed(stor Storage, log Logger) ([]models.Raga, error) {
	count, err := stor.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count stored raagas: %w", err)
	}
	if count == 0 {
		log.Infof("Seeding storage with built-in catalog")
		for _, raga := range catalogdata.Ragas() {
			if _, err := stor.RegisterRaga(raga); err != nil {
				return nil, fmt.Errorf("failed to seed raga %q: %w", raga.Name, err)
			}
		}
	}
	ragas, err := stor.ListRagas()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return ragas, nil
}

// scoreRaga computes the three similarity scores of the input against
// one catalog entry. Each metric independently takes the better of the
// arohana and avarohana directions; the winning direction may differ
// across metrics.
func (s *raagService) scoreRaga(input []string, raga models.Raga) models.MatchResult {
	arohana := Tokenize(raga.Arohana)
	avarohana := Tokenize(raga.Avarohana)

	exactPartial := maxFloat(
		ExactPartialScore(input, arohana),
		ExactPartialScore(input, avarohana),
	)
	editDistance := maxFloat(
		EditDistanceScore(input, arohana),
		EditDistanceScore(input, avarohana),
	)
	setOverlap := maxFloat(
		SetOverlapScore(input, arohana),
		SetOverlapScore(input, avarohana),
	)

	return models.MatchResult{
		RagaName:     raga.Name,
		ExactPartial: exactPartial,
		EditDistance: editDistance,
		SetOverlap:   setOverlap,
		Combined: weightExactPartial*exactPartial +
			weightEditDistance*editDistance +
			weightSetOverlap*setOverlap,
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Identify scores the input against every catalog entry. Entries whose
// combined score is exactly zero are dropped, not ranked last. A blank
// input yields an empty map, never an error.
func (s *raagService) Identify(sequence string) map[string]models.MatchResult {
	input := Tokenize(sequence)
	results := make(map[string]models.MatchResult)
	if len(input) == 0 {
		return results
	}

	for _, raga := range s.catalog.List() {
		result := s.scoreRaga(input, raga)
		if result.Combined > 0 {
			results[raga.Name] = result
		}
	}
	s.log.Debugf("Identify: %d tokens, %d candidates", len(input), len(results))
	return results
}

// TopMatches ranks the Identify output descending by combined score
// and returns at most topN results. Ties break by name ascending
// (case-insensitive) so ranking is reproducible. A negative topN is a
// caller error.
func (s *raagService) TopMatches(sequence string, topN int) ([]models.MatchResult, error) {
	if topN < 0 {
		return nil, fmt.Errorf("topN must be >= 0, got %d", topN)
	}

	results := s.Identify(sequence)
	ranked := make([]models.MatchResult, 0, len(results))
	for _, result := range results {
		ranked = append(ranked, result)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Combined != ranked[j].Combined {
			return ranked[i].Combined > ranked[j].Combined
		}
		return strings.ToLower(ranked[i].RagaName) < strings.ToLower(ranked[j].RagaName)
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	s.log.Infof("TopMatches: returning %d of %d candidates", len(ranked), len(results))
	return ranked, nil
}

// PrefixMatches reports which reference sequences are an exact prefix
// of the input, via the trie. This is a supplementary exact-match
// lookup; it never feeds into the fuzzy ranking above.
func (s *raagService) PrefixMatches(sequence string) []models.TrieLabel {
	return s.catalog.PrefixWalk(Tokenize(sequence))
}

// Classify classifies a single swara token.
func (s *raagService) Classify(token string) models.PitchClass {
	return Classify(token)
}

// ClassifySequence counts pitch classes across a swara string.
func (s *raagService) ClassifySequence(sequence string) map[models.PitchClass]int {
	return ClassifySequence(sequence)
}

// GetRaga retrieves a catalog entry by name, case-insensitively.
func (s *raagService) GetRaga(name string) (*models.Raga, error) {
	raga, ok := s.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("raga %q not found", name)
	}
	return &raga, nil
}

// ListRagas returns every catalog entry in catalog order.
func (s *raagService) ListRagas() []models.Raga {
	return s.catalog.List()
}

// SearchRagas performs fuzzy name lookup over the catalog.
func (s *raagService) SearchRagas(query string) []models.Raga {
	return s.catalog.Search(query)
}

// Close releases the storage backend, if any.
func (s *raagService) Close() error {
	if s.storage == nil {
		return nil
	}
	return s.storage.Close()
}

package raagdna

import "github.com/raagdna/raagdna/pkg/models"

type Service interface {
	Identify(sequence string) map[string]models.MatchResult
	TopMatches(sequence string, topN int) ([]models.MatchResult, error)
	PrefixMatches(sequence string) []models.TrieLabel
	Classify(token string) models.PitchClass
	ClassifySequence(sequence string) map[models.PitchClass]int
	GetRaga(name string) (*models.Raga, error)
	ListRagas() []models.Raga
	SearchRagas(query string) []models.Raga
	Close() error
}

type Storage interface {
	RegisterRaga(raga models.Raga) (string, error)
	ListRagas() ([]models.Raga, error)
	GetRagaByName(name string) (*models.Raga, error)
	DeleteRagaByName(name string) error
	Count() (int64, error)
	Close() error
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}

package models

// PitchClass is the classification of a single swara token.
type PitchClass int

const (
	Shuddha PitchClass = iota // natural, unmodified step
	Komal                     // flattened step (lowercase spelling)
	Teevra                    // sharpened step (trailing apostrophe)
	Unknown                   // empty or malformed token
)

func (p PitchClass) String() string {
	switch p {
	case Shuddha:
		return "Shuddha"
	case Komal:
		return "Komal"
	case Teevra:
		return "Teevra"
	default:
		return "Unknown"
	}
}

// PitchClasses lists every class in display order, for zero-initialized counts.
var PitchClasses = []PitchClass{Shuddha, Komal, Teevra, Unknown}

// Raga is one reference entry in the catalog.
// Arohana and Avarohana are whitespace-separated swara sequences.
type Raga struct {
	Name         string // unique within the catalog (case-insensitive)
	Arohana      string // ascending reference sequence
	Avarohana    string // descending reference sequence
	Description  string
	SwaraSummary string // e.g. "Teevra Ma, rest Shuddha"
}

// MatchResult is one ranked candidate produced per identification query.
// All scores are percentages in [0,100].
type MatchResult struct {
	RagaName     string
	Combined     float64 // 0.5*ExactPartial + 0.3*EditDistance + 0.2*SetOverlap
	ExactPartial float64
	EditDistance float64
	SetOverlap   float64
}

// TrieLabel identifies the reference sequence terminating at a trie node.
type TrieLabel struct {
	RagaName  string
	Direction string // DirectionArohana or DirectionAvarohana
}

const (
	DirectionArohana   = "Arohana"
	DirectionAvarohana = "Avarohana"
)

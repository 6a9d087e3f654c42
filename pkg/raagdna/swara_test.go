package raagdna

import (
	"testing"

	"github.com/raagdna/raagdna/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  models.PitchClass
	}{
		{"empty token", "", models.Unknown},
		{"teevra via apostrophe", "Ma'", models.Teevra},
		{"apostrophe anywhere", "m'a", models.Teevra},
		{"achal Sa", "Sa", models.Shuddha},
		{"achal Pa", "Pa", models.Shuddha},
		{"lowercase komal", "re", models.Komal},
		{"lowercase komal dha", "dha", models.Komal},
		{"uppercase shuddha", "Ni", models.Shuddha},
		{"digit token", "7a", models.Unknown},
		{"symbol token", "#Re", models.Unknown},
		{"lowercase sa is komal, not achal", "sa", models.Komal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.token); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// Classification must be total: any string maps to exactly one class.
func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{"", " ", "'", "1", "!", "Sa", "re", "Ma'", "ß", "日本"}
	for _, in := range inputs {
		got := Classify(in)
		found := false
		for _, class := range models.PitchClasses {
			if got == class {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Classify(%q) = %v, not a known PitchClass", in, got)
		}
	}
}

func TestClassifySequence(t *testing.T) {
	counts := ClassifySequence("Sa re Ga Ma' Pa dha Ni Sa")

	want := map[models.PitchClass]int{
		models.Shuddha: 5, // Sa, Ga, Pa, Ni, Sa
		models.Komal:   2, // re, dha
		models.Teevra:  1, // Ma'
		models.Unknown: 0,
	}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("count[%v] = %d, want %d", class, counts[class], n)
		}
	}
}

func TestClassifySequenceZeroInitialized(t *testing.T) {
	counts := ClassifySequence("")
	if len(counts) != len(models.PitchClasses) {
		t.Fatalf("expected %d classes, got %d", len(models.PitchClasses), len(counts))
	}
	for _, class := range models.PitchClasses {
		n, ok := counts[class]
		if !ok {
			t.Errorf("class %v missing from counts", class)
		}
		if n != 0 {
			t.Errorf("count[%v] = %d for empty input, want 0", class, n)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"Sa", 1},
		{"Sa Re Ga", 3},
		{"  Sa\tRe \n Ga  ", 3},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.input); len(got) != tt.want {
			t.Errorf("Tokenize(%q) yielded %d tokens, want %d", tt.input, len(got), tt.want)
		}
	}
}

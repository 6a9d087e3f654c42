package raagdna

import (
	"strings"
	"unicode"

	"github.com/raagdna/raagdna/pkg/models"
)

// achal swaras never take komal or teevra forms; their spelling is fixed.
var achalSwaras = map[string]bool{
	"Sa": true,
	"Pa": true,
}

// Tokenize splits a raw swara string on whitespace.
// A blank or empty input yields a nil slice.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// Classify maps a single swara token to its pitch-modifier class.
// It is total: every string, including the empty one, maps to exactly
// one class. Rules are evaluated in order, first match wins:
// empty -> Unknown; contains apostrophe -> Teevra; achal swara ->
// Shuddha; lowercase initial -> Komal; uppercase initial -> Shuddha;
// anything else (digit, symbol) -> Unknown.
func Classify(token string) models.PitchClass {
	if token == "" {
		return models.Unknown
	}
	if strings.ContainsRune(token, '\'') {
		return models.Teevra
	}
	if achalSwaras[token] {
		return models.Shuddha
	}
	first := []rune(token)[0]
	switch {
	case unicode.IsLower(first):
		return models.Komal
	case unicode.IsUpper(first):
		return models.Shuddha
	default:
		return models.Unknown
	}
}

// ClassifySequence counts pitch classes across a whitespace-separated
// swara string. Every class appears in the result, zero-initialized,
// so callers never need to probe for missing keys.
func ClassifySequence(sequence string) map[models.PitchClass]int {
	counts := make(map[models.PitchClass]int, len(models.PitchClasses))
	for _, class := range models.PitchClasses {
		counts[class] = 0
	}
	for _, token := range Tokenize(sequence) {
		counts[Classify(token)]++
	}
	return counts
}

package raagdna

import "strings"

// The three sequence scorers below all return a percentage in [0,100]
// and return 0 when either side is empty. ExactPartialScore is
// deliberately NOT a metric: it measures how much of the input is
// covered by the pattern, so swapping the arguments changes the
// result. EditDistanceScore and SetOverlapScore are symmetric.

// ExactPartialScore scores input coverage against a pattern.
// For each input token the pattern is scanned in order: a
// case-sensitive hit anywhere counts as one exact match; failing
// that, a case-insensitive hit counts as one partial match worth
// half credit. Normalization is always by input length, never
// pattern length.
func ExactPartialScore(input, pattern []string) float64 {
	if len(input) == 0 || len(pattern) == 0 {
		return 0
	}

	exact, partial := 0, 0
	for _, tok := range input {
		matched := false
		for _, p := range pattern {
			if tok == p {
				exact++
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, p := range pattern {
			if strings.EqualFold(tok, p) {
				partial++
				break
			}
		}
	}

	exactScore := 100 * float64(exact) / float64(len(input))
	partialScore := 50 * float64(partial) / float64(len(input))
	score := exactScore + partialScore
	if score > 100 {
		score = 100
	}
	return score
}

// EditDistanceScore converts token-level Levenshtein distance into a
// similarity percentage: 100 for identical sequences, falling by
// distance relative to the longer sequence, floored at 0.
func EditDistanceScore(input, pattern []string) float64 {
	if len(input) == 0 || len(pattern) == 0 {
		return 0
	}

	distance := levenshteinTokens(input, pattern)
	longer := len(input)
	if len(pattern) > longer {
		longer = len(pattern)
	}
	similarity := (1 - float64(distance)/float64(longer)) * 100
	if similarity < 0 {
		similarity = 0
	}
	return similarity
}

// levenshteinTokens is the classic DP over a (m+1) x (n+1) table with
// unit insert/delete/substitute cost. Substitution is free only on
// exact (case-sensitive) token equality. Library Levenshtein
// implementations work on runes of a single string, not token slices,
// so this stays hand-rolled.
func levenshteinTokens(a, b []string) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			deletion := dp[i-1][j] + 1
			insertion := dp[i][j-1] + 1
			substitution := dp[i-1][j-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}
			dp[i][j] = best
		}
	}
	return dp[m][n]
}

// SetOverlapScore is the Jaccard index over the distinct
// (case-sensitive) tokens of both sequences, as a percentage.
func SetOverlapScore(input, pattern []string) float64 {
	if len(input) == 0 || len(pattern) == 0 {
		return 0
	}

	inputSet := make(map[string]bool, len(input))
	for _, tok := range input {
		inputSet[tok] = true
	}
	patternSet := make(map[string]bool, len(pattern))
	for _, tok := range pattern {
		patternSet[tok] = true
	}

	intersection := 0
	for tok := range inputSet {
		if patternSet[tok] {
			intersection++
		}
	}
	union := len(inputSet) + len(patternSet) - intersection
	if union == 0 {
		return 0
	}
	return 100 * float64(intersection) / float64(union)
}

package raagdna

import (
	"reflect"
	"testing"

	"github.com/raagdna/raagdna/pkg/models"
)

func label(name, direction string) models.TrieLabel {
	return models.TrieLabel{RagaName: name, Direction: direction}
}

func TestTrieSearchWalkCollectsPrefixesInOrder(t *testing.T) {
	trie := NewTrie()
	trie.Insert([]string{"Sa", "Re", "Ga"}, label("X", models.DirectionArohana))
	trie.Insert([]string{"Sa", "Re", "Ga", "Ma"}, label("Y", models.DirectionArohana))

	got := trie.SearchWalk([]string{"Sa", "Re", "Ga", "Ma", "Pa"})
	want := []models.TrieLabel{
		label("X", models.DirectionArohana),
		label("Y", models.DirectionArohana),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchWalk = %v, want %v", got, want)
	}
}

func TestTrieSearchWalkStopsAtFirstMiss(t *testing.T) {
	trie := NewTrie()
	trie.Insert([]string{"Sa", "Re"}, label("X", models.DirectionArohana))
	trie.Insert([]string{"Sa", "Re", "Ga"}, label("Y", models.DirectionArohana))

	// "ga" (komal) breaks the walk before Y's terminal; no backtracking.
	got := trie.SearchWalk([]string{"Sa", "Re", "ga", "Ga"})
	want := []models.TrieLabel{label("X", models.DirectionArohana)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchWalk = %v, want %v", got, want)
	}
}

func TestTrieSearchWalkNoMatch(t *testing.T) {
	trie := NewTrie()
	trie.Insert([]string{"Sa", "Re"}, label("X", models.DirectionArohana))

	if got := trie.SearchWalk([]string{"Ni", "Sa"}); len(got) != 0 {
		t.Errorf("SearchWalk = %v, want empty", got)
	}
	if got := trie.SearchWalk(nil); len(got) != 0 {
		t.Errorf("SearchWalk(nil) = %v, want empty", got)
	}
}

// Two identical sequences: the later insertion owns the terminal node.
func TestTrieDuplicateInsertLastWins(t *testing.T) {
	trie := NewTrie()
	seq := []string{"Sa", "Re", "Ga"}
	trie.Insert(seq, label("First", models.DirectionArohana))
	trie.Insert(seq, label("Second", models.DirectionAvarohana))

	got := trie.SearchWalk(seq)
	want := []models.TrieLabel{label("Second", models.DirectionAvarohana)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchWalk = %v, want %v", got, want)
	}
}

func TestTrieEmptyInsertIsIgnored(t *testing.T) {
	trie := NewTrie()
	trie.Insert(nil, label("X", models.DirectionArohana))

	if got := trie.SearchWalk([]string{"Sa"}); len(got) != 0 {
		t.Errorf("SearchWalk = %v, want empty (root must never be terminal)", got)
	}
}

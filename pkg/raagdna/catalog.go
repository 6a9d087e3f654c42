package raagdna

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raagdna/raagdna/pkg/models"
)

// Catalog is the immutable reference table the engine scores against.
// Build it once (from the seed table or from storage) and share it
// freely; nothing mutates it after NewCatalog returns.
type Catalog struct {
	ragas  []models.Raga
	byName map[string]int // lowercased name -> index into ragas
	trie   *Trie
	names  []string // display-order names, for fuzzy search
}

// NewCatalog builds a catalog from a fixed table of entries. Entry
// order is preserved for listing. Duplicate names (case-insensitive)
// keep the first occurrence. Both reference sequences of every entry
// are inserted into the prefix trie.
func NewCatalog(ragas []models.Raga) *Catalog {
	c := &Catalog{
		byName: make(map[string]int, len(ragas)),
		trie:   NewTrie(),
	}
	for _, raga := range ragas {
		key := strings.ToLower(raga.Name)
		if _, exists := c.byName[key]; exists {
			continue
		}
		c.byName[key] = len(c.ragas)
		c.ragas = append(c.ragas, raga)
		c.names = append(c.names, raga.Name)

		c.trie.Insert(Tokenize(raga.Arohana), models.TrieLabel{
			RagaName:  raga.Name,
			Direction: models.DirectionArohana,
		})
		c.trie.Insert(Tokenize(raga.Avarohana), models.TrieLabel{
			RagaName:  raga.Name,
			Direction: models.DirectionAvarohana,
		})
	}
	return c
}

// Get looks up an entry by name, case-insensitively.
func (c *Catalog) Get(name string) (models.Raga, bool) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.Raga{}, false
	}
	return c.ragas[idx], true
}

// List returns all entries in catalog order. The returned slice is a
// copy; callers may not reach the catalog's backing storage.
func (c *Catalog) List() []models.Raga {
	out := make([]models.Raga, len(c.ragas))
	copy(out, c.ragas)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.ragas)
}

// Search performs fuzzy name matching, best matches first.
// An empty query matches nothing.
func (c *Catalog) Search(query string) []models.Raga {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, c.names)
	out := make([]models.Raga, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.ragas[m.Index])
	}
	return out
}

// PrefixWalk runs the exact-prefix trie lookup over a tokenized input.
func (c *Catalog) PrefixWalk(input []string) []models.TrieLabel {
	return c.trie.SearchWalk(input)
}

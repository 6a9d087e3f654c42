package raagdna

import "github.com/raagdna/raagdna/pkg/models"

// Trie indexes reference sequences by token for strict prefix lookup.
// It is built once alongside the catalog and never mutated afterwards,
// so concurrent reads need no locking. The trie is independent of the
// fuzzy scoring path: it answers "which reference sequences are
// exactly a prefix of this input" and nothing more.
type Trie struct {
	root *trieNode
}

type trieNode struct {
	children map[string]*trieNode
	terminal bool
	label    models.TrieLabel
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds a reference sequence, one token per edge, and marks the
// final node with label. If two sequences are identical the later
// insertion overwrites the earlier terminal label (last wins).
func (t *Trie) Insert(sequence []string, label models.TrieLabel) {
	node := t.root
	for _, token := range sequence {
		child, ok := node.children[token]
		if !ok {
			child = newTrieNode()
			node.children[token] = child
		}
		node = child
	}
	if len(sequence) > 0 {
		node.terminal = true
		node.label = label
	}
}

// SearchWalk consumes input tokens from the root and stops at the
// first token without a matching edge. No backtracking, no fuzziness.
// Every terminal node met along the way contributes its label, in
// walk order, so shorter prefixes come first.
func (t *Trie) SearchWalk(input []string) []models.TrieLabel {
	labels := []models.TrieLabel{}
	node := t.root
	for _, token := range input {
		child, ok := node.children[token]
		if !ok {
			break
		}
		node = child
		if node.terminal {
			labels = append(labels, node.label)
		}
	}
	return labels
}

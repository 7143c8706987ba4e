package index

import (
	"strings"

	"github.com/campusgrid/campusgrid/core"
)

// maxSuggestionsPerNode caps the candidate list held at each prefix node.
// This bounds memory regardless of corpus size; a very common prefix keeps
// only the first 50 records inserted under it. Known limitation, not a bug.
const maxSuggestionsPerNode = 50

// Suggestion is the compact record stored in the trie and returned by
// autocomplete lookups.
type Suggestion struct {
	// Key deduplicates records within one prefix node. For institutes it
	// is the institute id; flattened entities combine institute id and slug.
	Key string `json:"-"`

	Id    core.ID `json:"id"`
	Slug  string  `json:"slug"`
	Name  string  `json:"name"`
	Logo  string  `json:"logo,omitempty"`
	City  string  `json:"city,omitempty"`
	State string  `json:"state,omitempty"`
}

type trieNode struct {
	children    map[rune]*trieNode
	suggestions []Suggestion
	seen        map[string]struct{}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

func (n *trieNode) append(s Suggestion) {
	if len(n.suggestions) >= maxSuggestionsPerNode {
		return
	}
	if n.seen == nil {
		n.seen = make(map[string]struct{})
	}
	if _, dup := n.seen[s.Key]; dup {
		return
	}
	n.seen[s.Key] = struct{}{}
	n.suggestions = append(n.suggestions, s)
}

// Trie is a prefix tree whose every node holds the capped, deduplicated list
// of records inserted under that prefix, so a lookup at any prefix length is
// a single node read.
type Trie struct {
	root  *trieNode
	nodes int
}

func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert registers rec under every prefix of text, case-insensitively.
// Records beyond the per-node cap and duplicates (by Key) are dropped.
func (t *Trie) Insert(text string, rec Suggestion) {
	if strings.TrimSpace(text) == "" {
		return
	}
	node := t.root
	for _, r := range strings.ToLower(text) {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
			t.nodes++
		}
		child.append(rec)
		node = child
	}
}

// FindByPrefix walks the trie along query (case-insensitive) and returns up
// to limit records from the terminal node in insertion order. A broken path
// returns nil.
func (t *Trie) FindByPrefix(query string, limit int) []Suggestion {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return nil
	}
	node := t.root
	for _, r := range strings.ToLower(query) {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	if len(node.suggestions) <= limit {
		return append([]Suggestion(nil), node.suggestions...)
	}
	return append([]Suggestion(nil), node.suggestions[:limit]...)
}

// NodeCount returns the number of nodes below the root, for introspection.
func (t *Trie) NodeCount() int {
	return t.nodes
}

package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_InsertAndFind(t *testing.T) {
	trie := NewTrie()
	trie.Insert("Alpha Institute", Suggestion{Key: "1", Name: "Alpha Institute"})
	trie.Insert("Algebra College", Suggestion{Key: "2", Name: "Algebra College"})

	t.Run("every prefix matches", func(t *testing.T) {
		for _, prefix := range []string{"a", "al", "alp", "alpha i"} {
			got := trie.FindByPrefix(prefix, 8)
			require.NotEmpty(t, got, "prefix %q", prefix)
			assert.Equal(t, "Alpha Institute", got[0].Name)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Len(t, trie.FindByPrefix("ALPHA", 8), 1)
	})

	t.Run("shared prefix returns both in insertion order", func(t *testing.T) {
		got := trie.FindByPrefix("al", 8)
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha Institute", got[0].Name)
		assert.Equal(t, "Algebra College", got[1].Name)
	})

	t.Run("limit respected", func(t *testing.T) {
		assert.Len(t, trie.FindByPrefix("al", 1), 1)
	})

	t.Run("broken path is empty", func(t *testing.T) {
		assert.Empty(t, trie.FindByPrefix("alphax", 8))
	})

	t.Run("prefix longer than any word is empty", func(t *testing.T) {
		assert.Empty(t, trie.FindByPrefix("alpha institute of technology", 8))
	})
}

func TestTrie_DedupByKey(t *testing.T) {
	trie := NewTrie()
	rec := Suggestion{Key: "1", Name: "Alpha Institute"}
	trie.Insert("Alpha Institute", rec)
	trie.Insert("AIT", rec) // short name, same record

	assert.Len(t, trie.FindByPrefix("a", 8), 1, "same key must not duplicate under a shared prefix")
}

func TestTrie_NodeCap(t *testing.T) {
	trie := NewTrie()
	for i := 0; i < maxSuggestionsPerNode+25; i++ {
		trie.Insert("common", Suggestion{Key: fmt.Sprintf("k%d", i)})
	}

	got := trie.FindByPrefix("c", maxSuggestionsPerNode*2)
	assert.Len(t, got, maxSuggestionsPerNode, "a node never holds more than the cap")
	// The first inserted records win.
	assert.Equal(t, "k0", got[0].Key)
}

func TestTrie_EmptyInput(t *testing.T) {
	trie := NewTrie()
	trie.Insert("   ", Suggestion{Key: "1"})
	assert.Zero(t, trie.NodeCount())
	assert.Empty(t, trie.FindByPrefix("", 8))
	assert.Empty(t, trie.FindByPrefix("a", 0))
}

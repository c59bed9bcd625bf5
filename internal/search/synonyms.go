package search

import "strings"

// SynonymTable maps a lowercase query word to the corpus substrings that
// satisfy it. Words missing from the table fall back to plain containment.
// The relation is deliberately one-way: "jacket" finds blazers, but
// "blazer" does not find jackets.
type SynonymTable map[string][]string

// DefaultSynonyms is the built-in fashion synonym table.
var DefaultSynonyms = SynonymTable{
	"blazer": {"blazer"},
	"navy":   {"navy", "blue"},
	"blue":   {"blue", "navy"},
	"jacket": {"blazer"},
	"coat":   {"blazer"},
}

// Matches reports whether word is satisfied by corpus, either directly or
// through one of its synonyms.
func (t SynonymTable) Matches(word, corpus string) bool {
	if strings.Contains(corpus, word) {
		return true
	}
	for _, alt := range t[word] {
		if strings.Contains(corpus, alt) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy that can be extended safely.
func (t SynonymTable) Clone() SynonymTable {
	out := make(SynonymTable, len(t))
	for word, alts := range t {
		out[word] = append([]string(nil), alts...)
	}
	return out
}

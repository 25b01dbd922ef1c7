package greenwash

import (
	"sort"
	"strings"
)

// wordFrequencyLimit caps the frequency table at the top 25 words.
const wordFrequencyLimit = 25

// minWordLength excludes short filler words from the table.
const minWordLength = 3

// suspiciousVocabulary is the fixed set of words flagged in the
// frequency table regardless of context.
var suspiciousVocabulary = map[string]bool{
	"sustainable": true,
	"green":       true,
	"eco":         true,
	"natural":     true,
	"clean":       true,
	"friendly":    true,
	"neutral":     true,
	"zero":        true,
	"free":        true,
	"organic":     true,
	"ethical":     true,
	"responsible": true,
}

// wordFrequencies builds the top-25 word table: whitespace-split tokens,
// lowercased, non-letters stripped, words longer than three letters.
// Ties in count break alphabetically so the table is deterministic.
func wordFrequencies(text string) []WordFrequency {
	counts := make(map[string]int)
	for _, token := range strings.Fields(text) {
		word := stripNonLetters(strings.ToLower(token))
		if len(word) <= minWordLength {
			continue
		}
		counts[word]++
	}

	out := make([]WordFrequency, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordFrequency{
			Word:       word,
			Count:      count,
			Suspicious: suspiciousVocabulary[word],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if len(out) > wordFrequencyLimit {
		out = out[:wordFrequencyLimit]
	}
	return out
}

// stripNonLetters removes everything outside a-z from an already
// lowercased token.
func stripNonLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package matcher

import (
	"regexp"
	"strings"
)

var (
	// Anything that is not a word character or whitespace
	punctuation = regexp.MustCompile(`[^\w\s]`)

	// Structural prefixes that carry no discriminative content
	defaultStopWords = []string{
		"flat",
		"plot",
		"shop",
		"house",
		"building",
		"block",
		"h",
		"f",
		"p",
		"no",
		"number",
		"ward",
	}

	defaultStopWordSet = newStopWordSet(defaultStopWords)
)

// DefaultStopWords returns a copy of the stop words removed during standardization.
func DefaultStopWords() []string {
	words := make([]string, len(defaultStopWords))
	copy(words, defaultStopWords)
	return words
}

func newStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(w)), ".")
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// StandardizeAddress takes a raw address string and returns its canonical form
// using the default stop words.
func StandardizeAddress(address string) string {
	return standardize(address, defaultStopWordSet)
}

func standardize(address string, stopWords map[string]struct{}) string {
	if address == "" {
		return ""
	}

	address = punctuation.ReplaceAllString(strings.ToLower(address), " ")

	// Fields collapses whitespace runs and trims both ends
	words := strings.Fields(address)
	kept := words[:0]
	for _, word := range words {
		if _, stop := stopWords[word]; stop {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}

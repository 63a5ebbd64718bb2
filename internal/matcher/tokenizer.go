package matcher

import (
	"sort"
	"strings"
)

// TokenSet is the set of unique normalized words of an address.
type TokenSet map[string]struct{}

// Tokenize splits text into a set of lower-cased word tokens. It strips
// punctuation itself, so raw text is accepted.
func Tokenize(text string) TokenSet {
	if text == "" {
		return TokenSet{}
	}

	words := strings.Fields(punctuation.ReplaceAllString(strings.ToLower(text), " "))
	set := make(TokenSet, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// Len returns the number of distinct tokens
func (s TokenSet) Len() int {
	return len(s)
}

// Contains reports whether token is in the set
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Sorted returns the tokens in lexical order
func (s TokenSet) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

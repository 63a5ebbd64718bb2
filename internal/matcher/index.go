package matcher

import (
	"sort"
	"strings"
)

// ReferenceIndex holds references together with their precomputed token sets.
// Scoring through an index gives the same results as scoring the raw references.
// An index is read-only once built.
type ReferenceIndex struct {
	m      *Matcher
	refs   []ReferenceAddress
	tokens []TokenSet
}

// Index tokenizes every reference once
func (m *Matcher) Index(refs []ReferenceAddress) *ReferenceIndex {
	idx := &ReferenceIndex{
		m:      m,
		refs:   make([]ReferenceAddress, len(refs)),
		tokens: make([]TokenSet, len(refs)),
	}
	copy(idx.refs, refs)
	for i, ref := range idx.refs {
		idx.tokens[i] = m.TokenSet(ref.FullText())
	}
	return idx
}

// Len returns the number of indexed references
func (idx *ReferenceIndex) Len() int {
	return len(idx.refs)
}

// score returns one result per reference, in reference order
func (idx *ReferenceIndex) score(input string) []MatchResult {
	inputTokens := idx.m.TokenSet(input)
	results := make([]MatchResult, len(idx.refs))
	for i, ref := range idx.refs {
		similarity := JaccardIndex(inputTokens, idx.tokens[i])
		results[i] = MatchResult{
			Reference:  ref,
			Similarity: similarity,
			IsMatch:    similarity >= idx.m.threshold,
		}
	}
	return results
}

func (idx *ReferenceIndex) rank(results []MatchResult) []MatchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > idx.m.topN {
		results = results[:idx.m.topN]
	}
	return results
}

// BestMatches returns the top ranked references for input
func (idx *ReferenceIndex) BestMatches(input string) []MatchResult {
	return idx.rank(idx.score(input))
}

// FindMatches returns the top ranked references that meet the threshold
func (idx *ReferenceIndex) FindMatches(input string) []MatchResult {
	scored := idx.score(input)
	matched := scored[:0]
	for _, result := range scored {
		if result.IsMatch {
			matched = append(matched, result)
		}
	}
	return idx.rank(matched)
}

// Validate ranks the references for input and picks the best one
func (idx *ReferenceIndex) Validate(input string) (*Validation, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrAddressRequired
	}

	matches := idx.BestMatches(input)
	v := &Validation{
		InputAddress: input,
		Matches:      matches,
	}
	if len(matches) > 0 {
		best := matches[0]
		v.BestMatch = &best
	}
	return v, nil
}

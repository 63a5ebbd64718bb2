// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package matcher

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

const (
	// DefaultThreshold is the inclusive similarity at which a reference counts as a match
	DefaultThreshold = 0.6
	// DefaultTopN is the number of ranked matches returned for a single address
	DefaultTopN = 5
)

// Options configures a Matcher
type Options struct {
	Threshold float64
	TopN      int
	StopWords []string
	Workers   int
}

// DefaultOptions returns the options used by the package-level functions
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		TopN:      DefaultTopN,
		StopWords: DefaultStopWords(),
		Workers:   runtime.NumCPU(),
	}
}

// MatchResult is one scored reference
type MatchResult struct {
	Reference  ReferenceAddress `json:"referenceAddress"`
	Similarity float64          `json:"similarity"`
	IsMatch    bool             `json:"isMatch"`
}

// Validation is the outcome of validating a single address
type Validation struct {
	InputAddress string        `json:"inputAddress"`
	Matches      []MatchResult `json:"matches"`
	BestMatch    *MatchResult  `json:"bestMatch"`
}

// Matcher scores free-form addresses against reference addresses.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	threshold float64
	topN      int
	workers   int
	stopWords map[string]struct{}
}

var defaultMatcher = mustNew(DefaultOptions())

func mustNew(opts Options) *Matcher {
	m, err := New(opts)
	if err != nil {
		panic(err)
	}
	return m
}

// New validates opts and returns a Matcher. A nil StopWords slice selects the
// default list; an empty, non-nil slice disables stop-word removal.
func New(opts Options) (*Matcher, error) {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidOptions, opts.Threshold)
	}
	if opts.TopN < 1 {
		return nil, fmt.Errorf("%w: top_n must be at least 1, got %d", ErrInvalidOptions, opts.TopN)
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidOptions, opts.Workers)
	}

	stopWords := defaultStopWordSet
	if opts.StopWords != nil {
		stopWords = newStopWordSet(opts.StopWords)
	}

	return &Matcher{
		threshold: opts.Threshold,
		topN:      opts.TopN,
		workers:   opts.Workers,
		stopWords: stopWords,
	}, nil
}

// Threshold returns the inclusive match threshold
func (m *Matcher) Threshold() float64 { return m.threshold }

// TopN returns the ranked result cutoff
func (m *Matcher) TopN() int { return m.topN }

// Standardize normalizes an address with the matcher's stop words
func (m *Matcher) Standardize(address string) string {
	return standardize(address, m.stopWords)
}

// TokenSet standardizes and tokenizes an address
func (m *Matcher) TokenSet(address string) TokenSet {
	return Tokenize(m.Standardize(address))
}

// Similarity returns the Jaccard index of two addresses
func (m *Matcher) Similarity(addressA, addressB string) float64 {
	return JaccardIndex(m.TokenSet(addressA), m.TokenSet(addressB))
}

// BestMatches ranks every reference by similarity to input, keeping reference
// order on ties, and returns the first TopN.
func (m *Matcher) BestMatches(input string, refs []ReferenceAddress) []MatchResult {
	return m.Index(refs).BestMatches(input)
}

// FindMatches is BestMatches restricted to results at or above the threshold.
func (m *Matcher) FindMatches(input string, refs []ReferenceAddress) []MatchResult {
	return m.Index(refs).FindMatches(input)
}

// ValidateOne returns the ranked matches and the best match for one address.
func (m *Matcher) ValidateOne(input string, refs []ReferenceAddress) (*Validation, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrAddressRequired
	}
	return m.Index(refs).Validate(input)
}

// ValidateBulk returns the best match for every input, in input order.
func (m *Matcher) ValidateBulk(ctx context.Context, inputs []string, refs []ReferenceAddress) ([]BulkResult, error) {
	if len(inputs) == 0 {
		return nil, ErrAddressesRequired
	}
	return m.Index(refs).ValidateBulk(ctx, inputs)
}

// BestMatches ranks refs against input using the default options
func BestMatches(input string, refs []ReferenceAddress) []MatchResult {
	return defaultMatcher.BestMatches(input, refs)
}

// ValidateOne validates input using the default options
func ValidateOne(input string, refs []ReferenceAddress) (*Validation, error) {
	return defaultMatcher.ValidateOne(input, refs)
}

// ValidateBulk validates inputs using the default options
func ValidateBulk(ctx context.Context, inputs []string, refs []ReferenceAddress) ([]BulkResult, error) {
	return defaultMatcher.ValidateBulk(ctx, inputs, refs)
}

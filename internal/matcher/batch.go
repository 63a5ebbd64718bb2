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

	"golang.org/x/sync/errgroup"
)

// BulkResult is the best match for one address of a bulk request
type BulkResult struct {
	InputAddress string            `json:"inputAddress"`
	BestMatch    *ReferenceAddress `json:"bestMatch"`
	Similarity   float64           `json:"similarity"`
	IsValid      bool              `json:"isValid"`
}

// Best scores input against every reference and keeps the first highest one
func (idx *ReferenceIndex) Best(input string) BulkResult {
	result := BulkResult{InputAddress: input}
	if len(idx.refs) == 0 {
		return result
	}

	inputTokens := idx.m.TokenSet(input)
	bestAt := 0
	bestScore := JaccardIndex(inputTokens, idx.tokens[0])
	for i := 1; i < len(idx.refs); i++ {
		// Strictly greater keeps the earliest reference on ties
		if score := JaccardIndex(inputTokens, idx.tokens[i]); score > bestScore {
			bestAt, bestScore = i, score
		}
	}

	ref := idx.refs[bestAt]
	result.BestMatch = &ref
	result.Similarity = bestScore
	result.IsValid = bestScore >= idx.m.threshold
	return result
}

// ValidateBulk finds the best match for each input concurrently. Results are
// positional: results[i] belongs to inputs[i].
func (idx *ReferenceIndex) ValidateBulk(ctx context.Context, inputs []string) ([]BulkResult, error) {
	if len(inputs) == 0 {
		return nil, ErrAddressesRequired
	}

	results := make([]BulkResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(idx.m.workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = idx.Best(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

package matcher

// JaccardIndex returns |A ∩ B| / |A ∪ B|. Two empty sets are identical (1.0);
// an empty set against a non-empty one scores 0.0.
func JaccardIndex(a, b TokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	// Probe the larger set from the smaller one
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for token := range small {
		if _, ok := large[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

// Similarity standardizes and tokenizes both addresses with the default stop
// words and returns their Jaccard index.
func Similarity(addressA, addressB string) float64 {
	return JaccardIndex(
		Tokenize(StandardizeAddress(addressA)),
		Tokenize(StandardizeAddress(addressB)),
	)
}

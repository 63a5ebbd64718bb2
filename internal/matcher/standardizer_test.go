package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
)

func TestStandardizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Flat prefix with number abbreviation",
			input:    "Flat No. B-402, Shanti Heights",
			expected: "b 402 shanti heights",
		},
		{
			name:     "House abbreviation with period",
			input:    "H. No. 45/A, Shiv Vihar Colony",
			expected: "45 a shiv vihar colony",
		},
		{
			name:     "Ward prefix",
			input:    "Ward No. 32, Vidhyadhar Nagar",
			expected: "32 vidhyadhar nagar",
		},
		{
			name:     "Address with multiple spaces",
			input:    "  Plot   108 ,  Sunrise   Residency ",
			expected: "108 sunrise residency",
		},
		{
			name:     "Address with mixed case",
			input:    "NUMBER 7 HoUsE Gopal MARG",
			expected: "7 gopal marg",
		},
		{
			name:     "Stop words only match whole words",
			input:    "Flatiron Blockade Housing Road",
			expected: "flatiron blockade housing road",
		},
		{
			name:     "Single letter abbreviations are dropped",
			input:    "F Block, P-9 Sector 5",
			expected: "9 sector 5",
		},
		{
			name:     "Underscore is a word character",
			input:    "Shop_12 Main Bazaar",
			expected: "shop_12 main bazaar",
		},
		{
			name:     "Tabs and newlines",
			input:    "Jaipur\n\tRajasthan\r\n302020",
			expected: "jaipur rajasthan 302020",
		},
		{
			name:     "Empty address",
			input:    "",
			expected: "",
		},
		{
			name:     "Only stop words and punctuation",
			input:    "Flat, No. -- Building",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matcher.StandardizeAddress(tt.input))
		})
	}
}

func TestMatcherStandardizeCustomStopWords(t *testing.T) {
	m, err := matcher.New(matcher.Options{
		Threshold: matcher.DefaultThreshold,
		TopN:      matcher.DefaultTopN,
		StopWords: []string{"Near", "opp."},
		Workers:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, "flat sector 3 park x", m.Standardize("Flat Opp. Sector 3 Park near X"))

	none, err := matcher.New(matcher.Options{
		Threshold: matcher.DefaultThreshold,
		TopN:      matcher.DefaultTopN,
		StopWords: []string{},
		Workers:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, "flat b 402", none.Standardize("Flat B-402"))
}

func TestDefaultStopWordsIsACopy(t *testing.T) {
	words := matcher.DefaultStopWords()
	require.Contains(t, words, "flat")
	words[0] = "jaipur"

	assert.Equal(t, "jaipur", matcher.StandardizeAddress("Flat Jaipur"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Duplicates collapse", "B-402 b 402 Jaipur, jaipur", []string{"402", "b", "jaipur"}},
		{"Raw punctuation", "M.I. Road", []string{"i", "m", "road"}},
		{"Empty", "", []string{}},
		{"Whitespace only", "  \t ", []string{}},
		{"Stop words are not removed", "Flat 7", []string{"7", "flat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := matcher.Tokenize(tt.input)
			assert.Equal(t, len(tt.expected), set.Len())
			assert.Equal(t, tt.expected, set.Sorted())
			for _, token := range tt.expected {
				assert.True(t, set.Contains(token), token)
			}
		})
	}
}

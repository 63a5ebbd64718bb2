package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
)

const referencesYAML = `references:
  - id: ref-01
    address_line1: "Flat No. B-402, Shanti Heights"
    address_line2: "Near D-Mart, Mansarovar"
    city: Jaipur
    state: Rajasthan
    pincode: "302020"
    zone: South
  - id: ref-02
    address_line1: "H. No. 45/A, Shiv Vihar Colony"
    address_line2: "Opp. Sector 3 Park, Pratap Nagar"
    city: Jaipur
    state: Rajasthan
    pincode: "302033"
    zone: South
  - id: ref-retired
    address_line1: "Flat B-402 Shanti Heights Mansarovar"
    city: Jaipur
    is_active: false
`

const shantiHeights = "Flat B-402 Shanti Heights Mansarovar Jaipur"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	require.Equal(t, "success", env.Status)
	return env.Data
}

func TestSimilarityCommand(t *testing.T) {
	out, _, err := execute(t, "similarity", "Flat B-402 Shanti Heights", "B 402 Shanti Heights")
	require.NoError(t, err)

	got := decode[similarityResult](t, out)
	assert.Equal(t, 1.0, got.Similarity)
	assert.Equal(t, "Flat B-402 Shanti Heights", got.AddressA)
}

func TestValidateCommand(t *testing.T) {
	refs := writeFile(t, t.TempDir(), "refs.yaml", referencesYAML)

	out, stderr, err := execute(t, "validate", "--refs", refs, shantiHeights)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Loaded 3 reference addresses (2 active)")

	got := decode[matcher.Validation](t, out)
	assert.Equal(t, shantiHeights, got.InputAddress)
	require.Len(t, got.Matches, 2)
	require.NotNil(t, got.BestMatch)
	// The inactive exact match is never considered
	assert.Equal(t, "ref-01", got.BestMatch.Reference.ID)
	assert.InDelta(t, 6.0/11.0, got.BestMatch.Similarity, 1e-12)
	assert.False(t, got.BestMatch.IsMatch)
}

func TestValidateCommandQuietAtErrorLevel(t *testing.T) {
	refs := writeFile(t, t.TempDir(), "refs.yaml", referencesYAML)

	out, stderr, err := execute(t, "validate", "--refs", refs, "--log-level", "error", shantiHeights)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.NotEmpty(t, out)
}

func TestValidateCommandThresholdOverride(t *testing.T) {
	dir := t.TempDir()
	refs := writeFile(t, dir, "refs.yaml", referencesYAML)
	cfg := writeFile(t, dir, "config.yaml", "matcher:\n  threshold: 0.9\n  top_n: 1\nreferences:\n  file: "+refs+"\n")

	out, _, err := execute(t, "validate", "--config", cfg, shantiHeights)
	require.NoError(t, err)
	got := decode[matcher.Validation](t, out)
	require.Len(t, got.Matches, 1)
	assert.False(t, got.BestMatch.IsMatch)

	out, _, err = execute(t, "validate", "--config", cfg, "--threshold", "0.5", shantiHeights)
	require.NoError(t, err)
	got = decode[matcher.Validation](t, out)
	require.Len(t, got.Matches, 1)
	assert.True(t, got.BestMatch.IsMatch)
}

func TestValidateCommandRequiresAddress(t *testing.T) {
	// No reference file is needed to reject a blank address
	for _, args := range [][]string{{"validate"}, {"validate", "   "}} {
		_, _, err := execute(t, args...)
		assert.ErrorIs(t, err, matcher.ErrAddressRequired)
	}
}

func TestValidateCommandMissingReferences(t *testing.T) {
	_, _, err := execute(t, "validate", shantiHeights)
	assert.ErrorContains(t, err, "no reference file")

	_, _, err = execute(t, "validate", "--refs", filepath.Join(t.TempDir(), "missing.csv"), shantiHeights)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBulkCommand(t *testing.T) {
	dir := t.TempDir()
	refs := writeFile(t, dir, "refs.yaml", referencesYAML)
	input := writeFile(t, dir, "addresses.txt", "H No 45/A Shiv Vihar Colony Pratap Nagar\n\n")

	out, _, err := execute(t, "bulk", "--refs", refs, "--threshold", "0.5", "--input", input, "--summary",
		shantiHeights, "Totally Unrelated Text Xyz")
	require.NoError(t, err)

	report := decode[bulkReport](t, out)
	require.Len(t, report.Results, 3)

	assert.Equal(t, shantiHeights, report.Results[0].InputAddress)
	assert.Equal(t, "ref-01", report.Results[0].BestMatch.ID)
	assert.True(t, report.Results[0].IsValid)

	assert.Equal(t, "Totally Unrelated Text Xyz", report.Results[1].InputAddress)
	assert.Equal(t, 0.0, report.Results[1].Similarity)
	assert.False(t, report.Results[1].IsValid)

	assert.Equal(t, "ref-02", report.Results[2].BestMatch.ID)
	assert.Equal(t, 0.5, report.Results[2].Similarity)
	assert.True(t, report.Results[2].IsValid)

	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Valid)
	assert.Equal(t, 0.5, report.Summary.MedianSimilarity)
}

func TestBulkCommandWithoutSummary(t *testing.T) {
	refs := writeFile(t, t.TempDir(), "refs.yaml", referencesYAML)

	out, _, err := execute(t, "bulk", "--refs", refs, shantiHeights)
	require.NoError(t, err)

	results := decode[[]matcher.BulkResult](t, out)
	require.Len(t, results, 1)
	assert.False(t, results[0].IsValid)
}

func TestReadAddressFileLongLine(t *testing.T) {
	long := strings.Repeat("Shanti Heights ", 10000)
	path := writeFile(t, t.TempDir(), "addresses.txt", "12 JLN Marg\n"+long+"\n")

	addresses, err := readAddressFile(path)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, strings.TrimSpace(long), addresses[1])
}

func TestBulkCommandRequiresAddresses(t *testing.T) {
	dir := t.TempDir()
	refs := writeFile(t, dir, "refs.yaml", referencesYAML)
	empty := writeFile(t, dir, "empty.txt", "\n  \n")

	_, _, err := execute(t, "bulk", "--refs", refs)
	assert.ErrorIs(t, err, matcher.ErrAddressesRequired)

	_, _, err = execute(t, "bulk", "--refs", refs, "--input", empty)
	assert.ErrorIs(t, err, matcher.ErrPrecondition)
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := execute(t, "similarity", "--threshold", "1.5", "a", "b")
	assert.ErrorIs(t, err, matcher.ErrInvalidOptions)

	_, _, err = execute(t, "similarity", "--source", "s3", "a", "b")
	assert.ErrorContains(t, err, "unknown reference source")

	_, _, err = execute(t, "similarity", "--log-level", "loud", "a", "b")
	assert.Error(t, err)
}

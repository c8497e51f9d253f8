package neutral

import (
	"strconv"
	"strings"
	"testing"

	farm "github.com/dgryski/go-farm"
	"github.com/stretchr/testify/require"
)

// fingerprint gives a cheap order-sensitive equality check for a line slice,
// the same role go-farm plays for read dedup keys in markduplicates.
func fingerprint(lines []string) uint64 {
	return farm.Hash64([]byte(strings.Join(lines, "\n")))
}

func block(id int, lines ...string) string {
	var b strings.Builder
	b.WriteString("   -1\n")
	b.WriteString(strconv.Itoa(id) + "\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	b.WriteString("   -1\n")
	return b.String()
}

func TestScanBlocksBasic(t *testing.T) {
	input := block(403, "1,0,0,0", "2,1,0,0")
	idx, err := ScanBlocks(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, idx[403], 1)
	require.Equal(t, []string{"1,0,0,0", "2,1,0,0"}, idx[403][0].Lines)
}

func TestScanBlocksOrderIndependence(t *testing.T) {
	a := block(403, "1,0,0,0") + block(100, "My Model", "4.41") + block(402, "7,0,0,0,0,0,0", "<NULL>")
	b := block(100, "My Model", "4.41") + block(402, "7,0,0,0,0,0,0", "<NULL>") + block(403, "1,0,0,0")

	idxA, err := ScanBlocks(strings.NewReader(a))
	require.NoError(t, err)
	idxB, err := ScanBlocks(strings.NewReader(b))
	require.NoError(t, err)

	require.Equal(t, idxA.Lines(403), idxB.Lines(403))
	require.Equal(t, idxA.Lines(100), idxB.Lines(100))
	require.Equal(t, idxA.Lines(402), idxB.Lines(402))
}

func TestScanBlocksRepeatedAccumulation(t *testing.T) {
	unsplit := block(403, "1,0,0,0", "2,1,0,0")
	split := block(403, "1,0,0,0") + block(403, "2,1,0,0")

	idxUnsplit, err := ScanBlocks(strings.NewReader(unsplit))
	require.NoError(t, err)
	idxSplit, err := ScanBlocks(strings.NewReader(split))
	require.NoError(t, err)

	require.Equal(t, idxUnsplit.Lines(403), idxSplit.Lines(403))
	require.Equal(t, fingerprint(idxUnsplit.Lines(403)), fingerprint(idxSplit.Lines(403)))
	require.Len(t, idxSplit[403], 2)
}

func TestScanBlocksDoubledDelimiterGuard(t *testing.T) {
	// A stray bare "-1" (no leading spaces) right after a boundary must be
	// skipped, and scanning must resume looking for the real boundary.
	input := "   -1\n-1\n   -1\n403\n1,0,0,0\n   -1\n"
	idx, err := ScanBlocks(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, idx[403], 1)
	require.Equal(t, []string{"1,0,0,0"}, idx[403][0].Lines)
}

func TestScanBlocksMalformedIDDropsBackToSeek(t *testing.T) {
	input := "   -1\nnotanumber\n   -1\n403\n1,0,0,0\n   -1\n"
	idx, err := ScanBlocks(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, idx[403], 1)
}

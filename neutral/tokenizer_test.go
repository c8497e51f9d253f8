package neutral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRecord(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"comma separated", "1, 2, 3", []string{"1", "2", "3"}},
		{"comma with trailing comma", "1, 2, 3,", []string{"1", "2", "3"}},
		{"whitespace separated", "1   2   3", []string{"1", "2", "3"}},
		{"mixed internal spacing with commas", "1,  2,3", []string{"1", "2", "3"}},
		{"empty", "", nil},
		{"only whitespace", "   ", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SplitRecord(c.line))
		})
	}
}

func TestSplitRecordTokenizerEquivalence(t *testing.T) {
	lines := []string{
		"1, 2, 3",
		"1, 2, 3,",
		"7,  0.5, -1.25e3,",
		"10   20   30",
		"5,",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			replaced := strings.TrimRight(strings.ReplaceAll(line, ",", " "), " \t")
			require.Equal(t, SplitRecord(line), SplitRecord(replaced))
		})
	}
}

func TestNormalizeNull(t *testing.T) {
	assert.Equal(t, "", NormalizeNull("<NULL>"))
	assert.Equal(t, "foo", NormalizeNull("foo"))
	assert.Equal(t, "", NormalizeNull(""))
}

package mesh

import (
	"testing"

	"github.com/emsolution/femap2vtk/vtkio"
	"github.com/stretchr/testify/require"
)

func TestLookupPassthrough(t *testing.T) {
	code, topo, ok := Lookup(2, false)
	require.True(t, ok)
	require.Equal(t, 2, code)
	require.Equal(t, vtkio.CellTriangle, topo.Kind)
	require.Equal(t, 3, topo.NodeCount)
}

func TestLookupUnknownCode(t *testing.T) {
	_, _, ok := Lookup(999, false)
	require.False(t, ok)
}

func TestLookup2DReduction(t *testing.T) {
	code, topo, ok := Lookup(8, true) // hex -> quad
	require.True(t, ok)
	require.Equal(t, 4, code)
	require.Equal(t, vtkio.CellQuad, topo.Kind)
	require.Equal(t, 4, topo.NodeCount)
}

func TestLookup2DReductionOnlyAffectsKnownCodes(t *testing.T) {
	// Triangle has no 2D analog entry; force2D must leave it unchanged.
	code, topo, ok := Lookup(2, true)
	require.True(t, ok)
	require.Equal(t, 2, code)
	require.Equal(t, vtkio.CellTriangle, topo.Kind)
}

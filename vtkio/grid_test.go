package vtkio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleGrid() *UnstructuredGrid {
	return &UnstructuredGrid{
		Points: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Cells: []Cell{
			{Kind: CellTriangle, PtIndex: []int{0, 1, 2}},
		},
		CellData: []Array{
			{Name: "ElementID", Kind: ArrayInt32, Ints: []int32{10}},
			{Name: "PropertyID", Kind: ArrayInt32, Ints: []int32{7}},
			{Name: "MaterialID", Kind: ArrayInt32, Ints: []int32{0}},
			{Name: "TopologyID", Kind: ArrayInt32, Ints: []int32{2}},
		},
	}
}

func TestWriteVTUASCII(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVTU(&buf, sampleGrid(), true, false))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	require.Contains(t, out, `NumberOfPoints="3"`)
	require.Contains(t, out, `NumberOfCells="1"`)
	require.Contains(t, out, `Name="ElementID"`)
	require.Contains(t, out, `format="ascii"`)
	require.NotContains(t, out, "AppendedData")
}

func TestWriteVTUAppendedBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVTU(&buf, sampleGrid(), false, false))
	out := buf.String()
	require.Contains(t, out, `format="appended"`)
	require.Contains(t, out, "<AppendedData encoding=\"base64\">")
}

func TestWriteVTUAppendedCompressed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVTU(&buf, sampleGrid(), false, true))
	out := buf.String()
	require.Contains(t, out, `compressor="vtkZLibDataCompressor"`)
}

func TestCellArraysOffsetsAccumulate(t *testing.T) {
	cells := []Cell{
		{Kind: CellTriangle, PtIndex: []int{0, 1, 2}},
		{Kind: CellQuad, PtIndex: []int{3, 4, 5, 6}},
	}
	conn, offsets, types := cellArrays(cells)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, conn)
	require.Equal(t, []int{3, 7}, offsets)
	require.Equal(t, []int{int(CellTriangle), int(CellQuad)}, types)
}

package vtkio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Cell is one emitted cell: its VTK kind and the point indices (already
// translated from FEMAP node IDs into 0-based point-buffer indices) that
// make up its connectivity, in the order the target cell kind expects.
type Cell struct {
	Kind    CellKind
	PtIndex []int
}

// UnstructuredGrid is the in-memory form of one .vtu document: a point
// buffer, a cell list, and named point/cell data arrays.
type UnstructuredGrid struct {
	Points    [][3]float64
	Cells     []Cell
	PointData []Array
	CellData  []Array
}

// WriteVTU serializes g as a VTK XML UnstructuredGrid document. When ascii
// is false, array payloads are written as base64-encoded appended data,
// optionally zlib-compressed (see encode.go); VTK readers do not require
// bit-identical bytes between the two modes, only a well-formed document.
func WriteVTU(w io.Writer, g *UnstructuredGrid, ascii bool, compress bool) error {
	bw := bufio.NewWriter(w)
	enc := newEncoder(ascii, compress)

	nPoints := len(g.Points)
	nCells := len(g.Cells)

	fmt.Fprintln(bw, `<?xml version="1.0"?>`)
	fmt.Fprintf(bw, `<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian"%s>`+"\n", enc.headerAttrs())
	fmt.Fprintln(bw, `  <UnstructuredGrid>`)
	fmt.Fprintf(bw, `    <Piece NumberOfPoints="%d" NumberOfCells="%d">`+"\n", nPoints, nCells)

	fmt.Fprintln(bw, `      <Points>`)
	if err := enc.writeVectorArray(bw, "Points", flattenPoints(g.Points), 8); err != nil {
		return err
	}
	fmt.Fprintln(bw, `      </Points>`)

	fmt.Fprintln(bw, `      <Cells>`)
	conn, offsets, types := cellArrays(g.Cells)
	if err := enc.writeIntArray(bw, "connectivity", conn, 8); err != nil {
		return err
	}
	if err := enc.writeIntArray(bw, "offsets", offsets, 8); err != nil {
		return err
	}
	if err := enc.writeIntArray(bw, "types", types, 8); err != nil {
		return err
	}
	fmt.Fprintln(bw, `      </Cells>`)

	if err := writeDataSection(bw, enc, "PointData", g.PointData); err != nil {
		return err
	}
	if err := writeDataSection(bw, enc, "CellData", g.CellData); err != nil {
		return err
	}

	fmt.Fprintln(bw, `    </Piece>`)
	fmt.Fprintln(bw, `  </UnstructuredGrid>`)
	if err := enc.writeAppendedSection(bw); err != nil {
		return err
	}
	fmt.Fprintln(bw, `</VTKFile>`)
	return bw.Flush()
}

func writeDataSection(bw *bufio.Writer, enc *encoder, tag string, arrays []Array) error {
	fmt.Fprintf(bw, "      <%s>\n", tag)
	for _, a := range arrays {
		var err error
		switch a.Kind {
		case ArrayInt32:
			err = enc.writeIntArray(bw, a.Name, int32sToInts(a.Ints), 8)
		case ArrayFloat64x3:
			err = enc.writeVectorArray(bw, a.Name, flattenVectors(a.Vectors), 8)
		default:
			err = enc.writeScalarArray(bw, a.Name, a.Scalars, 8)
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(bw, "      </%s>\n", tag)
	return nil
}

func flattenPoints(pts [][3]float64) []float64 {
	out := make([]float64, 0, len(pts)*3)
	for _, p := range pts {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

func flattenVectors(v [][3]float64) []float64 {
	return flattenPoints(v)
}

func int32sToInts(v []int32) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}

// cellArrays builds the flat connectivity/offsets/types triple VTK's
// unstructured grid schema requires from the per-cell point-index lists.
func cellArrays(cells []Cell) (connectivity, offsets, types []int) {
	connectivity = make([]int, 0)
	offsets = make([]int, 0, len(cells))
	types = make([]int, 0, len(cells))
	running := 0
	for _, c := range cells {
		connectivity = append(connectivity, c.PtIndex...)
		running += len(c.PtIndex)
		offsets = append(offsets, running)
		types = append(types, int(c.Kind))
	}
	return
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

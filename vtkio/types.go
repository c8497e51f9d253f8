package vtkio

// CellKind is a VTK cell type code, as defined by vtkCellType.h. Only the
// kinds the FEMAP topology table (spec §4.3) can produce are named here.
type CellKind int

const (
	CellVertex               CellKind = 1
	CellLine                 CellKind = 3
	CellTriangle             CellKind = 5
	CellQuad                 CellKind = 9
	CellTetra                CellKind = 10
	CellHexahedron           CellKind = 12
	CellWedge                CellKind = 13
	CellQuadraticTetra       CellKind = 24
	CellQuadraticHexahedron  CellKind = 25
	CellQuadraticWedge       CellKind = 26
	CellQuadraticTriangle    CellKind = 22
	CellQuadraticQuad        CellKind = 23
)

// ArrayKind selects which of Array's typed slices holds the payload: one
// of the VTK point/cell data array shapes this pipeline emits.
type ArrayKind int

const (
	ArrayFloat64 ArrayKind = iota
	ArrayInt32
	ArrayFloat64x3
)

// Array is one named VTK data array (a PointData or CellData entry).
type Array struct {
	Name string
	Kind ArrayKind

	Scalars []float64
	Ints    []int32
	Vectors [][3]float64
}

// Len reports the number of tuples in the array, regardless of Kind.
func (a Array) Len() int {
	switch a.Kind {
	case ArrayInt32:
		return len(a.Ints)
	case ArrayFloat64x3:
		return len(a.Vectors)
	default:
		return len(a.Scalars)
	}
}

// Components reports the VTK NumberOfComponents attribute for the array.
func (a Array) Components() int {
	if a.Kind == ArrayFloat64x3 {
		return 3
	}
	return 1
}

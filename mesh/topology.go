package mesh

import "github.com/emsolution/femap2vtk/vtkio"

// Topology describes how one FEMAP topology code maps to a VTK cell kind
// and how many leading connectivity nodes that cell kind consumes.
type Topology struct {
	Kind      vtkio.CellKind
	NodeCount int
}

// topologyTable is the static FEMAP-code -> VTK-cell-kind mapping, spec §4.3.
var topologyTable = map[int]Topology{
	9:  {vtkio.CellVertex, 1},
	0:  {vtkio.CellLine, 2},
	2:  {vtkio.CellTriangle, 3},
	3:  {vtkio.CellQuadraticTriangle, 6},
	4:  {vtkio.CellQuad, 4},
	5:  {vtkio.CellQuadraticQuad, 8},
	6:  {vtkio.CellTetra, 4},
	10: {vtkio.CellQuadraticTetra, 10},
	7:  {vtkio.CellWedge, 6},
	11: {vtkio.CellQuadraticWedge, 15},
	8:  {vtkio.CellHexahedron, 8},
	12: {vtkio.CellQuadraticHexahedron, 20},
}

// reduce2D maps a 3D topology code to its 2D-reduction equivalent per spec
// §4.3: Brick/Wedge collapse to Quad/Tri by taking a node-list prefix.
// Codes with no 2D analog pass through unchanged.
var reduce2D = map[int]int{
	8:  4,
	12: 5,
	7:  2,
	11: 3,
}

// Lookup resolves a FEMAP topology code to its Topology, applying the
// 2D-reduction table first when force2D is set. ok is false for an unknown
// code.
func Lookup(code int, force2D bool) (resolvedCode int, topo Topology, ok bool) {
	resolvedCode = code
	if force2D {
		if reduced, has := reduce2D[code]; has {
			resolvedCode = reduced
		}
	}
	topo, ok = topologyTable[resolvedCode]
	return resolvedCode, topo, ok
}

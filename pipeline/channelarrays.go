package pipeline

import (
	"github.com/emsolution/femap2vtk/mesh"
	"github.com/emsolution/femap2vtk/neutral"
	"github.com/emsolution/femap2vtk/vtkio"
)

// arrayNames names the vector/magnitude array pair spec §6's canonical
// array-name table assigns to one channel.
type arrayNames struct {
	Vec, Mag string
}

var channelArrayNames = map[mesh.ChannelKind]arrayNames{
	mesh.Magnetic:     {"B-Vec (T)", "B-Mag (T)"},
	mesh.Current:      {"J-Vec (A/m^2)", "J-Mag (A/m^2)"},
	mesh.Force:        {"F Nodal-Vec (N/m^3)", "F Nodal-Mag (N/m^3)"},
	mesh.LorentzForce: {"F Lorents-Vec (N/m^3)", "F Lorents-Mag (N/m^3)"},
	mesh.Heat:         {"Heat Density (W/m^3)", "Heat (W)"},
}

// filterBySet returns, preserving order, the records for setID. entType==0
// matches any entity type; otherwise only records of that entity type pass.
func filterBySet(records []neutral.OutputVector, setID, entType int) []neutral.OutputVector {
	var out []neutral.OutputVector
	for _, r := range records {
		if r.SetID != setID {
			continue
		}
		if entType != 0 && r.EntType != entType {
			continue
		}
		out = append(out, r)
	}
	return out
}

// applyDisplacement implements spec §4.7 step 2: offset every point whose
// node ID carries a nodal displacement vector for step setID.
func applyDisplacement(m *mesh.Mesh, records []neutral.OutputVector, setID int) {
	filtered := filterBySet(records, setID, neutral.EntityNodal)
	for _, v := range mesh.DefaultGroupPolicy(filtered) {
		for nodeID, x := range v.X {
			idx, ok := m.NodeIndex[nodeID]
			if !ok {
				continue
			}
			m.Points[idx][0] += x
			m.Points[idx][1] += v.Y[nodeID]
			m.Points[idx][2] += v.Z[nodeID]
		}
	}
}

// channelArraysForStep implements spec §4.7 step 3 for one non-displacement
// channel: fuse the step's records into a Vector3, derive its magnitude,
// and attach point and/or cell arrays per the ent_type rule.
func channelArraysForStep(m *mesh.Mesh, kind mesh.ChannelKind, records []neutral.OutputVector, setID int) (pointArrays, cellArrays []vtkio.Array) {
	names, ok := channelArrayNames[kind]
	if !ok {
		return nil, nil
	}
	filtered := filterBySet(records, setID, 0)
	if len(filtered) == 0 {
		return nil, nil
	}
	vecs := mesh.DefaultGroupPolicy(filtered)
	if len(vecs) == 0 {
		return nil, nil
	}
	v := vecs[0]
	mag := v.Magnitude()

	if v.EntType == neutral.EntityElemental {
		cellArrays = append(cellArrays,
			vtkio.Array{Name: names.Vec, Kind: vtkio.ArrayFloat64x3, Vectors: denseCellVector(m, v)},
			vtkio.Array{Name: names.Mag, Kind: vtkio.ArrayFloat64, Scalars: denseCellScalar(m, mag)},
		)
		return nil, cellArrays
	}

	pointVec := densePointVector(m, v)
	pointMag := densePointScalar(m, mag)
	pointArrays = append(pointArrays,
		vtkio.Array{Name: names.Vec, Kind: vtkio.ArrayFloat64x3, Vectors: pointVec},
		vtkio.Array{Name: names.Mag, Kind: vtkio.ArrayFloat64, Scalars: pointMag},
	)
	cellArrays = append(cellArrays,
		vtkio.Array{Name: names.Vec, Kind: vtkio.ArrayFloat64x3, Vectors: averageVectorToCells(m, pointVec)},
		vtkio.Array{Name: names.Mag, Kind: vtkio.ArrayFloat64, Scalars: averageScalarToCells(m, pointMag)},
	)
	return pointArrays, cellArrays
}

func densePointVector(m *mesh.Mesh, v mesh.Vector3) [][3]float64 {
	out := make([][3]float64, len(m.Points))
	for nodeID, x := range v.X {
		idx, ok := m.NodeIndex[nodeID]
		if !ok {
			continue
		}
		out[idx] = [3]float64{x, v.Y[nodeID], v.Z[nodeID]}
	}
	return out
}

func densePointScalar(m *mesh.Mesh, vals map[int]float64) []float64 {
	out := make([]float64, len(m.Points))
	for nodeID, val := range vals {
		idx, ok := m.NodeIndex[nodeID]
		if !ok {
			continue
		}
		out[idx] = val
	}
	return out
}

func denseCellVector(m *mesh.Mesh, v mesh.Vector3) [][3]float64 {
	out := make([][3]float64, len(m.Cells))
	for elemID, x := range v.X {
		idx, ok := m.CellIndex[elemID]
		if !ok {
			continue
		}
		out[idx] = [3]float64{x, v.Y[elemID], v.Z[elemID]}
	}
	return out
}

func denseCellScalar(m *mesh.Mesh, vals map[int]float64) []float64 {
	out := make([]float64, len(m.Cells))
	for elemID, val := range vals {
		idx, ok := m.CellIndex[elemID]
		if !ok {
			continue
		}
		out[idx] = val
	}
	return out
}

// averageVectorToCells implements the "per-cell variant obtained by
// averaging point values over each cell's corner indices" rule of §4.7.
func averageVectorToCells(m *mesh.Mesh, pointVec [][3]float64) [][3]float64 {
	out := make([][3]float64, len(m.Cells))
	for i, c := range m.Cells {
		var sum [3]float64
		for _, pidx := range c.PtIndex {
			sum[0] += pointVec[pidx][0]
			sum[1] += pointVec[pidx][1]
			sum[2] += pointVec[pidx][2]
		}
		if n := float64(len(c.PtIndex)); n > 0 {
			out[i] = [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
		}
	}
	return out
}

func averageScalarToCells(m *mesh.Mesh, pointVals []float64) []float64 {
	out := make([]float64, len(m.Cells))
	for i, c := range m.Cells {
		var sum float64
		for _, pidx := range c.PtIndex {
			sum += pointVals[pidx]
		}
		if n := float64(len(c.PtIndex)); n > 0 {
			out[i] = sum / n
		}
	}
	return out
}

// subsetArray restricts a (unfiltered) cell array to the cells at idxs, in
// order — used when splitting a step's grid into per-property sub-blocks
// that share the parent's point buffer but not its cell list.
func subsetArray(a vtkio.Array, idxs []int) vtkio.Array {
	out := vtkio.Array{Name: a.Name, Kind: a.Kind}
	switch a.Kind {
	case vtkio.ArrayInt32:
		out.Ints = make([]int32, len(idxs))
		for i, idx := range idxs {
			out.Ints[i] = a.Ints[idx]
		}
	case vtkio.ArrayFloat64x3:
		out.Vectors = make([][3]float64, len(idxs))
		for i, idx := range idxs {
			out.Vectors[i] = a.Vectors[idx]
		}
	default:
		out.Scalars = make([]float64, len(idxs))
		for i, idx := range idxs {
			out.Scalars[i] = a.Scalars[idx]
		}
	}
	return out
}

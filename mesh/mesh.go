package mesh

import (
	"github.com/biogo/store/llrb"

	"github.com/emsolution/femap2vtk/neutral"
	"github.com/emsolution/femap2vtk/vtkio"
)

// nodeItem orders neutral.Node values by ID for llrb.Tree insertion, giving
// ascending iteration as a side effect of insertion rather than a separate
// sort pass (§4.4 step 1).
type nodeItem neutral.Node

func (n nodeItem) Compare(other llrb.Comparable) int {
	o := other.(nodeItem)
	switch {
	case n.ID < o.ID:
		return -1
	case n.ID > o.ID:
		return 1
	default:
		return 0
	}
}

// DiscardedElement records one element the builder could not emit, and
// why, per spec §4.4/§7 (UnknownTopology, ShortConnectivity, MissingNode).
type DiscardedElement struct {
	ID     int
	Reason string
}

// Mesh is the deduplicated, VTK-ready form of a parsed geometry: a point
// buffer indexed by contiguous position, a cell list, per-cell bookkeeping
// arrays, and the ID<->index lookup maps spec §8 requires to be bijections
// onto their respective index ranges.
type Mesh struct {
	Points [][3]float64
	Cells  []vtkio.Cell

	ElementID  []int32
	PropertyID []int32
	MaterialID []int32
	TopologyID []int32

	NodeIndex map[int]int // FEMAP node ID -> point index
	CellIndex map[int]int // FEMAP element ID -> cell index

	// PropertyOrder lists every distinct property ID referenced by an
	// emitted cell, in order of first appearance.
	PropertyOrder []int

	Discarded []DiscardedElement
}

// Build implements spec §4.4: points are emitted in ascending node-ID
// order; each element is resolved against the topology table (applying the
// 2D reduction when force2D is set) and either emitted as one cell or
// discarded and logged.
func Build(nodes []neutral.Node, elements []neutral.Element, properties map[int]neutral.Property, force2D bool) *Mesh {
	tree := llrb.Tree{}
	for _, n := range nodes {
		tree.Insert(nodeItem(n))
	}

	m := &Mesh{
		Points:    make([][3]float64, 0, tree.Len()),
		NodeIndex: make(map[int]int, tree.Len()),
		CellIndex: make(map[int]int, len(elements)),
	}
	tree.Do(func(item llrb.Comparable) bool {
		n := neutral.Node(item.(nodeItem))
		m.NodeIndex[n.ID] = len(m.Points)
		m.Points = append(m.Points, [3]float64{n.X, n.Y, n.Z})
		return false
	})

	seenProperty := make(map[int]bool)

	for _, el := range elements {
		_, topo, ok := Lookup(el.Topology, force2D)
		if !ok {
			m.Discarded = append(m.Discarded, DiscardedElement{ID: el.ID, Reason: "unknown topology"})
			continue
		}
		if len(el.Nodes) < topo.NodeCount {
			m.Discarded = append(m.Discarded, DiscardedElement{ID: el.ID, Reason: "short connectivity"})
			continue
		}
		ptIdx := make([]int, topo.NodeCount)
		missing := false
		for k := 0; k < topo.NodeCount; k++ {
			idx, ok := m.NodeIndex[el.Nodes[k]]
			if !ok {
				missing = true
				break
			}
			ptIdx[k] = idx
		}
		if missing {
			m.Discarded = append(m.Discarded, DiscardedElement{ID: el.ID, Reason: "missing node"})
			continue
		}

		cellIdx := len(m.Cells)
		m.Cells = append(m.Cells, vtkio.Cell{Kind: topo.Kind, PtIndex: ptIdx})
		m.CellIndex[el.ID] = cellIdx

		matID := int32(0)
		if prop, ok := properties[el.PropID]; ok {
			matID = int32(prop.MaterialID)
		}
		m.ElementID = append(m.ElementID, int32(el.ID))
		m.PropertyID = append(m.PropertyID, int32(el.PropID))
		m.MaterialID = append(m.MaterialID, matID)
		m.TopologyID = append(m.TopologyID, int32(el.Topology))

		if !seenProperty[el.PropID] {
			seenProperty[el.PropID] = true
			m.PropertyOrder = append(m.PropertyOrder, el.PropID)
		}
	}

	return m
}

// Clone returns a shallow copy of m with a freshly allocated, independently
// mutable Points buffer. Connectivity, lookup maps, and per-cell arrays are
// shared by reference: they are never mutated by a time-step worker, only
// read, so sharing them is safe per spec §5/§9.
func (m *Mesh) Clone() *Mesh {
	pts := make([][3]float64, len(m.Points))
	copy(pts, m.Points)
	clone := *m
	clone.Points = pts
	return &clone
}

// CellsForProperty returns the indices, in cell order, of every cell whose
// PropertyID equals propID.
func (m *Mesh) CellsForProperty(propID int) []int {
	var idxs []int
	for i, p := range m.PropertyID {
		if int(p) == propID {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

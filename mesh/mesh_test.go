package mesh

import (
	"testing"

	"github.com/emsolution/femap2vtk/neutral"
	"github.com/stretchr/testify/require"
)

func TestBuildMinimalStaticMesh(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0},
	}
	elements := []neutral.Element{
		{ID: 10, PropID: 7, Topology: 2, Nodes: []int{1, 2, 3}},
	}
	properties := map[int]neutral.Property{7: {ID: 7, MaterialID: 1, Title: "Plate"}}

	m := Build(nodes, elements, properties, false)
	require.Len(t, m.Points, 3)
	require.Len(t, m.Cells, 1)
	require.Equal(t, []int32{10}, m.ElementID)
	require.Equal(t, []int32{7}, m.PropertyID)
	require.Equal(t, []int32{2}, m.TopologyID)
	require.Equal(t, []int{7}, m.PropertyOrder)
	require.Empty(t, m.Discarded)
}

func TestBuildPointsAscendingByID(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 30, X: 3, Y: 0, Z: 0},
		{ID: 10, X: 1, Y: 0, Z: 0},
		{ID: 20, X: 2, Y: 0, Z: 0},
	}
	m := Build(nodes, nil, nil, false)
	require.Equal(t, 0, m.NodeIndex[10])
	require.Equal(t, 1, m.NodeIndex[20])
	require.Equal(t, 2, m.NodeIndex[30])
	require.Equal(t, [3]float64{1, 0, 0}, m.Points[0])
	require.Equal(t, [3]float64{3, 0, 0}, m.Points[2])
}

func TestBuildDiscardsShortConnectivity(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6},
	}
	elements := []neutral.Element{
		// Topology 8 (hex) needs 8 nodes; only 6 given.
		{ID: 10, PropID: 1, Topology: 8, Nodes: []int{1, 2, 3, 4, 5, 6}},
	}
	m := Build(nodes, elements, nil, false)
	require.Empty(t, m.Cells)
	require.Len(t, m.Discarded, 1)
	require.Equal(t, 10, m.Discarded[0].ID)
	require.Equal(t, "short connectivity", m.Discarded[0].Reason)
}

func TestBuildDiscardsMissingNode(t *testing.T) {
	nodes := []neutral.Node{{ID: 1}, {ID: 2}, {ID: 3}}
	elements := []neutral.Element{
		{ID: 20, PropID: 1, Topology: 2, Nodes: []int{1, 2, 99}},
	}
	m := Build(nodes, elements, nil, false)
	require.Empty(t, m.Cells)
	require.Equal(t, "missing node", m.Discarded[0].Reason)
}

func TestBuildDiscardsUnknownTopology(t *testing.T) {
	nodes := []neutral.Node{{ID: 1}, {ID: 2}, {ID: 3}}
	elements := []neutral.Element{
		{ID: 30, PropID: 1, Topology: 9999, Nodes: []int{1, 2, 3}},
	}
	m := Build(nodes, elements, nil, false)
	require.Equal(t, "unknown topology", m.Discarded[0].Reason)
}

func TestBuildCellCountInvariant(t *testing.T) {
	nodes := []neutral.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	elements := []neutral.Element{
		{ID: 1, PropID: 1, Topology: 2, Nodes: []int{1, 2, 3}}, // ok
		{ID: 2, PropID: 2, Topology: 2, Nodes: []int{1, 2}},    // short, discarded
		{ID: 3, PropID: 1, Topology: 2, Nodes: []int{2, 3, 4}}, // ok
	}
	m := Build(nodes, elements, nil, false)
	require.Equal(t, len(elements)-len(m.Discarded), len(m.Cells))

	total := 0
	for _, p := range m.PropertyOrder {
		total += len(m.CellsForProperty(p))
	}
	require.Equal(t, len(m.Cells), total)
}

func TestBuildForce2DReducesHexToQuadButKeepsOriginalTopologyID(t *testing.T) {
	nodes := make([]neutral.Node, 8)
	nodeIDs := make([]int, 8)
	for i := range nodes {
		nodes[i] = neutral.Node{ID: i + 1}
		nodeIDs[i] = i + 1
	}
	elements := []neutral.Element{
		{ID: 1, PropID: 1, Topology: 8, Nodes: nodeIDs},
	}
	m := Build(nodes, elements, nil, true)
	require.Len(t, m.Cells, 1)
	require.Len(t, m.Cells[0].PtIndex, 4)
	require.Equal(t, int32(8), m.TopologyID[0])
	require.Len(t, m.Points, 8)
}

func TestBuildIDBijection(t *testing.T) {
	nodes := []neutral.Node{{ID: 5}, {ID: 1}, {ID: 3}}
	elements := []neutral.Element{
		{ID: 100, PropID: 1, Topology: 2, Nodes: []int{5, 1, 3}},
	}
	m := Build(nodes, elements, nil, false)

	seen := make(map[int]bool)
	for _, idx := range m.NodeIndex {
		require.False(t, seen[idx])
		seen[idx] = true
		require.True(t, idx >= 0 && idx < len(m.Points))
	}
	require.Len(t, seen, len(m.Points))

	seenCells := make(map[int]bool)
	for _, idx := range m.CellIndex {
		require.False(t, seenCells[idx])
		seenCells[idx] = true
		require.True(t, idx >= 0 && idx < len(m.Cells))
	}
	require.Len(t, seenCells, len(m.Cells))
}

func TestCloneIsIndependent(t *testing.T) {
	nodes := []neutral.Node{{ID: 1, X: 0}, {ID: 2, X: 1}}
	m := Build(nodes, nil, nil, false)
	clone := m.Clone()
	clone.Points[0][0] = 99
	require.Equal(t, 0.0, m.Points[0][0])
	require.Equal(t, 99.0, clone.Points[0][0])
}

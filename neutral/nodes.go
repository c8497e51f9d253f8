package neutral

import "strconv"

// Node is one grid point: a positive external ID in [1, 99_999_999] and its
// coordinates. Node IDs are unique within a mesh.
type Node struct {
	ID      int
	X, Y, Z float64
}

// ExtractNodes reads block 403. The record stride is one line: field 0 is
// the node ID, fields 11/12/13 are x/y/z. A record with too few fields, or
// whose ID or coordinates don't parse, is skipped and logged.
func ExtractNodes(idx BlockIndex, issues *Issues) []Node {
	lines := idx.Lines(blockNodes)
	nodes := make([]Node, 0, len(lines))
	for _, line := range lines {
		fields := SplitRecord(line)
		if len(fields) < 14 {
			issues.Add(blockNodes, "short node record: "+line)
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			issues.Add(blockNodes, "bad node id: "+fields[0])
			continue
		}
		x, errX := strconv.ParseFloat(fields[11], 64)
		y, errY := strconv.ParseFloat(fields[12], 64)
		z, errZ := strconv.ParseFloat(fields[13], 64)
		if errX != nil || errY != nil || errZ != nil {
			issues.Add(blockNodes, "bad node coordinates for id "+fields[0])
			continue
		}
		nodes = append(nodes, Node{ID: id, X: x, Y: y, Z: z})
	}
	return nodes
}

package neutral

import "strconv"

// elementStride is the number of lines each 404 record occupies: the header
// line, two ten-wide connectivity lines, and four unused trailer lines.
const elementStride = 7

// Element is one FEMAP element record: its own ID, the property it belongs
// to, its FEMAP topology code, and the external node IDs of its
// connectivity (trailing zero padding already stripped).
type Element struct {
	ID       int
	PropID   int
	Topology int
	Nodes    []int
}

// ExtractElements reads block 404. A record whose header doesn't parse is
// skipped; node-prefix/topology validity against the mesh's node set is the
// mesh builder's job, not this extractor's.
func ExtractElements(idx BlockIndex, issues *Issues) []Element {
	lines := idx.Lines(blockElements)
	elements := make([]Element, 0, len(lines)/elementStride)
	for i := 0; i < len(lines); i += elementStride {
		if i+2 >= len(lines) {
			issues.Add(blockElements, "truncated element record")
			break
		}
		fields := SplitRecord(lines[i])
		if len(fields) < 5 {
			issues.Add(blockElements, "short element header: "+lines[i])
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			issues.Add(blockElements, "bad element id: "+fields[0])
			continue
		}
		propID, err := strconv.Atoi(fields[2])
		if err != nil {
			issues.Add(blockElements, "bad property id for element "+fields[0])
			continue
		}
		topology, err := strconv.Atoi(fields[4])
		if err != nil {
			issues.Add(blockElements, "bad topology code for element "+fields[0])
			continue
		}
		nodes := appendConnectivity(nil, lines[i+1])
		nodes = appendConnectivity(nodes, lines[i+2])
		elements = append(elements, Element{
			ID:       id,
			PropID:   propID,
			Topology: topology,
			Nodes:    nodes,
		})
	}
	return elements
}

// appendConnectivity parses up to 10 integer node IDs from one connectivity
// line, appending the nonzero ones to dst. Zeros are padding and are
// dropped wherever they occur, matching FEMAP's fixed-width connectivity
// lines for lower-order elements.
func appendConnectivity(dst []int, line string) []int {
	fields := SplitRecord(line)
	if len(fields) > 10 {
		fields = fields[:10]
	}
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n == 0 {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

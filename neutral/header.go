package neutral

// Header is the extraction of block 100: the model title and the FEMAP
// version string that wrote the file.
type Header struct {
	Title   string
	Version string
}

// ExtractHeader reads block 100. FEMAP writes exactly one instance in
// practice; if more than one is present, the first instance's lines are
// used, matching the "first populated wins" convention used for output
// sets.
func ExtractHeader(idx BlockIndex) (Header, bool) {
	blocks := idx[blockHeader]
	if len(blocks) == 0 {
		return Header{}, false
	}
	lines := blocks[0].Lines
	if len(lines) < 2 {
		return Header{}, false
	}
	return Header{
		Title:   NormalizeNull(lines[0]),
		Version: lines[1],
	}, true
}

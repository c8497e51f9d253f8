package neutral

import (
	"bufio"
	"io"
	"strconv"
)

// boundary is the line FEMAP uses to delimit blocks: three spaces then "-1".
const boundary = "   -1"

// Block is one instance of a numbered block: the block ID plus its line
// contents in original order. A Block is immutable once returned by
// ScanBlocks.
type Block struct {
	ID    int
	Lines []string
}

// BlockIndex maps a block ID to every instance of that block found in the
// file, in appearance order. Concatenate the Lines of all instances (in
// slice order) to get the logical union of a repeated block.
type BlockIndex map[int][]*Block

// Lines returns the concatenation, in appearance order, of every instance's
// Lines for the given block ID.
func (idx BlockIndex) Lines(id int) []string {
	var out []string
	for _, b := range idx[id] {
		out = append(out, b.Lines...)
	}
	return out
}

type scanState int

const (
	stateSeekBoundary scanState = iota
	stateReadID
	stateAccumulate
)

// ScanBlocks consumes r and partitions it into blocks per the FEMAP Neutral
// file delimiter convention. It performs no validation beyond recognizing
// the boundary and parsing the block ID; content-level errors are left to
// the typed extractors.
func ScanBlocks(r io.Reader) (BlockIndex, error) {
	idx := make(BlockIndex)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	state := stateSeekBoundary
	var current *Block

	for scanner.Scan() {
		line := scanner.Text()
		switch state {
		case stateSeekBoundary:
			if line == boundary {
				state = stateReadID
			}
		case stateReadID:
			// Doubled-delimiter guard: a bare "-1" right after the boundary
			// is a stray repeat of the terminator, not a block ID.
			if line == "-1" {
				state = stateSeekBoundary
				continue
			}
			id, err := strconv.Atoi(trimID(line))
			if err != nil {
				state = stateSeekBoundary
				continue
			}
			current = &Block{ID: id}
			idx[id] = append(idx[id], current)
			state = stateAccumulate
		case stateAccumulate:
			if line == boundary {
				state = stateSeekBoundary
				current = nil
				continue
			}
			current.Lines = append(current.Lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

func trimID(line string) string {
	start, end := 0, len(line)
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t' || line[end-1] == '\r') {
		end--
	}
	return line[start:end]
}

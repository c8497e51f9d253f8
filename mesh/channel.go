package mesh

import (
	"math"

	"github.com/emsolution/femap2vtk/neutral"
)

// ChannelKind names one of the six result streams the pipeline understands.
// The zero value is not a valid channel.
type ChannelKind int

const (
	Displacement ChannelKind = iota + 1
	Magnetic
	Current
	Force
	LorentzForce
	Heat
)

// Names returned by String, used in log and error messages. They match the
// channel flag names of cmd/femap2vtk; the output array names live in
// pipeline's channelArrayNames.
var channelNames = map[ChannelKind]string{
	Displacement: "displacement",
	Magnetic:     "magnetic",
	Current:      "current",
	Force:        "force",
	LorentzForce: "lorentz-force",
	Heat:         "heat",
}

func (k ChannelKind) String() string {
	if name, ok := channelNames[k]; ok {
		return name
	}
	return "unknown"
}

// Vector3 is one 3-component result tuple, keyed by entity ID, fused from
// three consecutive scalar OutputVector records per spec §4.7 step 3.
type Vector3 struct {
	SetID   int
	EntType int
	X, Y, Z map[int]float64
}

// Magnitude computes the per-entity Euclidean norm of v.
func (v Vector3) Magnitude() map[int]float64 {
	mag := make(map[int]float64, len(v.X))
	for id, x := range v.X {
		y := v.Y[id]
		z := v.Z[id]
		mag[id] = math.Sqrt(x*x + y*y + z*z)
	}
	return mag
}

// GroupPolicy decides how a channel's flat OutputVector records (one scalar
// payload per record) are fused into 3-component Vector3 tuples. The exact
// triplet-grouping convention is emitter-specific and not documented in the
// neutral-file format itself (spec §9 open question), so it is exposed as
// an injectable per-channel policy rather than assumed silently.
type GroupPolicy func(records []neutral.OutputVector) []Vector3

// DefaultGroupPolicy implements the default convention described in spec
// §4.7 step 3: every consecutive run of three OutputVector records that
// share the same SetID is fused into one Vector3 for that set. Records
// that don't come in complete triplets are dropped (and should be
// surfaced by the caller as an InconsistentStepAxis-style issue if that
// matters for the channel in question).
func DefaultGroupPolicy(records []neutral.OutputVector) []Vector3 {
	var out []Vector3
	i := 0
	for i < len(records) {
		setID := records[i].SetID
		entType := records[i].EntType
		j := i
		for j < len(records) && records[j].SetID == setID {
			j++
		}
		run := records[i:j]
		for k := 0; k+3 <= len(run); k += 3 {
			out = append(out, Vector3{
				SetID:   setID,
				EntType: entType,
				X:       run[k].Results,
				Y:       run[k+1].Results,
				Z:       run[k+2].Results,
			})
		}
		i = j
	}
	return out
}

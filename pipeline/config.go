// Package pipeline wires neutral, mesh, and vtkio together into the
// end-to-end FEMAP-to-VTK run: parse the mesh and result files, build the
// shared Mesh, fan out one worker per time step, and emit the collection
// index. See SPEC_FULL.md §7 for the module-level design.
package pipeline

import "github.com/emsolution/femap2vtk/mesh"

// Config is the complete set of inputs one pipeline run needs. Every
// result channel is optional; Mesh is the only required path.
type Config struct {
	OutputDir  string
	OutputName string

	Mesh     string
	Channels map[mesh.ChannelKind]string

	Force2D  bool
	ASCII    bool // true = inline ascii DataArrays; false = appended binary
	Compress bool // zlib-compress appended binary payloads (ignored if ASCII)

	// Parallelism bounds both fan-outs (§5): channel parsing and time-step
	// writing. 0 means one worker per job: one per configured channel, and
	// one per step.
	Parallelism int
}

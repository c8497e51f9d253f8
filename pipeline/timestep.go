package pipeline

import (
	"context"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"

	"github.com/emsolution/femap2vtk/mesh"
	"github.com/emsolution/femap2vtk/neutral"
	"github.com/emsolution/femap2vtk/vtkio"
)

// StepResult is the outcome of writing one output set's multi-block
// document. A non-nil Err means the step's files are incomplete or absent;
// it is recorded, not propagated, so sibling steps still run (§7
// WriteFailed).
type StepResult struct {
	StepID  int
	Value   float64
	RelPath string // relative to Config.OutputDir; empty when Err != nil
	Err     error
}

// WriteTimeSteps implements spec §4.7: one worker per output set, each
// cloning the shared mesh, applying displacement, resolving per-channel
// arrays, splitting into per-property sub-blocks, and writing the step's
// .vtm/.vtu documents.
func WriteTimeSteps(ctx context.Context, cfg Config, m *mesh.Mesh, sets []neutral.OutputSet, vectors map[mesh.ChannelKind][]neutral.OutputVector) ([]StepResult, error) {
	results := make([]StepResult, len(sets))
	sink := newFileSink(ctx, cfg.OutputDir+"/"+cfg.OutputName)

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = len(sets)
		if parallelism == 0 {
			parallelism = 1
		}
	}

	err := traverse.T{Limit: parallelism}.Each(len(sets), func(i int) error {
		set := sets[i]
		result := writeOneStep(sink, m, set, cfg, vectors)
		if result.Err != nil {
			log.Error.Printf("step %d (%s): %v", set.ID, set.Title, result.Err)
		}
		results[i] = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func writeOneStep(sink vtkio.Sink, base *mesh.Mesh, set neutral.OutputSet, cfg Config, vectors map[mesh.ChannelKind][]neutral.OutputVector) StepResult {
	title := vtkio.SanitizeTitle(set.Title)
	clone := base.Clone()

	if disp, ok := vectors[mesh.Displacement]; ok {
		applyDisplacement(clone, disp, set.ID)
	}

	var pointArrays, cellArrays []vtkio.Array
	for kind, records := range vectors {
		if kind == mesh.Displacement {
			continue
		}
		pa, ca := channelArraysForStep(clone, kind, records, set.ID)
		pointArrays = append(pointArrays, pa...)
		cellArrays = append(cellArrays, ca...)
	}
	cellArrays = append(cellArrays,
		vtkio.Array{Name: "ElementID", Kind: vtkio.ArrayInt32, Ints: clone.ElementID},
		vtkio.Array{Name: "PropertyID", Kind: vtkio.ArrayInt32, Ints: clone.PropertyID},
		vtkio.Array{Name: "MaterialID", Kind: vtkio.ArrayInt32, Ints: clone.MaterialID},
		vtkio.Array{Name: "TopologyID", Kind: vtkio.ArrayInt32, Ints: clone.TopologyID},
	)

	mb := &vtkio.MultiBlock{}
	for _, propID := range clone.PropertyOrder {
		idxs := clone.CellsForProperty(propID)
		subCells := make([]vtkio.Cell, len(idxs))
		for k, idx := range idxs {
			subCells[k] = clone.Cells[idx]
		}
		subCellArrays := make([]vtkio.Array, len(cellArrays))
		for k, a := range cellArrays {
			subCellArrays[k] = subsetArray(a, idxs)
		}
		mb.Blocks = append(mb.Blocks, vtkio.NamedGrid{
			Name: strconv.Itoa(propID),
			Grid: &vtkio.UnstructuredGrid{
				Points:    clone.Points,
				Cells:     subCells,
				PointData: pointArrays,
				CellData:  subCellArrays,
			},
		})
	}

	vtmName := title + ".vtm"
	if err := vtkio.WriteVTM(sink, vtmName, title, title, mb, cfg.ASCII, cfg.Compress); err != nil {
		return StepResult{StepID: set.ID, Value: set.Value, Err: err}
	}
	return StepResult{
		StepID:  set.ID,
		Value:   set.Value,
		RelPath: cfg.OutputName + "/" + vtmName,
	}
}

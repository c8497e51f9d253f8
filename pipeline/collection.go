package pipeline

import (
	"context"
	"sort"

	"github.com/grailbio/base/file"

	"github.com/emsolution/femap2vtk/vtkio"
)

// WriteCollection implements spec §4.8/§7.4: sorts step results by StepID
// ascending, keeping only the steps that wrote successfully, and emits
// <output_dir>/<output_name>.pvd.
func WriteCollection(ctx context.Context, cfg Config, results []StepResult) (err error) {
	ordered := make([]StepResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].StepID < ordered[j].StepID })

	entries := make([]vtkio.CollectionEntry, 0, len(ordered))
	for _, r := range ordered {
		if r.Err != nil {
			continue
		}
		entries = append(entries, vtkio.CollectionEntry{Timestep: r.Value, File: r.RelPath})
	}

	f, err := file.Create(ctx, cfg.OutputDir+"/"+cfg.OutputName+".pvd")
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, f, &err)
	return vtkio.WriteCollection(f.Writer(ctx), entries)
}

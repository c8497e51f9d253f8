package pipeline

import (
	"context"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"

	"github.com/emsolution/femap2vtk/mesh"
	"github.com/emsolution/femap2vtk/neutral"
)

// discardedElementBlock is the 404 (element) block ID, used only to tag
// discarded-element issues merged back into the mesh-parsing log.
const discardedElementBlock = 404

// materialRefBlock is the 601 (material) block ID, used to tag a property
// that references a material ID block 601 never defined.
const materialRefBlock = 601

// Run implements spec §7.5: parse the mesh file (fatal on failure), build
// the shared Mesh, fan out the result-channel parse and the per-step write,
// then emit the collection index. This is the single entry point
// cmd/femap2vtk calls.
func Run(ctx context.Context, cfg Config) error {
	m, issues, err := parseMesh(ctx, cfg)
	if err != nil {
		return errors.E(err, "reading mesh file", cfg.Mesh)
	}
	for _, item := range issues.Items() {
		log.Error.Printf("mesh block %d: %s", item.Block, item.Reason)
	}

	sets, vectors, chanIssues, err := ParseChannels(ctx, cfg)
	if err != nil {
		return errors.E(err, "parsing result channels")
	}
	for _, item := range chanIssues.Items() {
		log.Error.Printf("channel block %d: %s", item.Block, item.Reason)
	}
	if len(sets) == 0 {
		// No channel contributed an output-set table: treat the run as a
		// single static snapshot of the geometry rather than producing no
		// output at all.
		sets = []neutral.OutputSet{{ID: 0, Value: 0, Title: "static"}}
	}

	results, err := WriteTimeSteps(ctx, cfg, m, sets, vectors)
	if err != nil {
		return errors.E(err, "writing time steps")
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		log.Error.Printf("%d of %d steps failed to write", failed, len(results))
	}

	if err := WriteCollection(ctx, cfg, results); err != nil {
		return errors.E(err, "writing collection document")
	}
	return nil
}

func parseMesh(ctx context.Context, cfg Config) (m *mesh.Mesh, issues *neutral.Issues, err error) {
	issues = &neutral.Issues{}
	f, err := file.Open(ctx, cfg.Mesh)
	if err != nil {
		return nil, issues, err
	}
	defer file.CloseAndReport(ctx, f, &err)

	idx, err := neutral.ScanBlocks(f.Reader(ctx))
	if err != nil {
		return nil, issues, err
	}

	if header, ok := neutral.ExtractHeader(idx); ok {
		log.Debug.Printf("model %q written by FEMAP %s", header.Title, header.Version)
	}

	nodes := neutral.ExtractNodes(idx, issues)
	elements := neutral.ExtractElements(idx, issues)
	properties := neutral.ExtractProperties(idx, issues)
	materials := neutral.ExtractMaterials(idx, issues)
	for _, prop := range properties {
		if _, ok := materials[prop.MaterialID]; !ok {
			issues.Add(materialRefBlock, "property "+strconv.Itoa(prop.ID)+" references unknown material "+strconv.Itoa(prop.MaterialID))
		}
	}

	m = mesh.Build(nodes, elements, properties, cfg.Force2D)
	for _, d := range m.Discarded {
		issues.Add(discardedElementBlock, "discarded element "+strconv.Itoa(d.ID)+": "+d.Reason)
	}
	return m, issues, nil
}

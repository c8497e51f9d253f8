package pipeline

import (
	"context"
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"

	"github.com/emsolution/femap2vtk/mesh"
	"github.com/emsolution/femap2vtk/neutral"
)

// channelResult is the per-channel outcome of parsing one result file.
type channelResult struct {
	kind    mesh.ChannelKind
	sets    []neutral.OutputSet
	vectors []neutral.OutputVector
	issues  *neutral.Issues
	err     error
}

// ParseChannels implements spec §4.5: one worker per configured channel,
// joined, with the first channel (in a stable, deterministic order) whose
// set list is non-empty chosen as canonical. A channel that fails to parse
// does not abort its siblings; its failure is recorded and it contributes
// no vectors.
func ParseChannels(ctx context.Context, cfg Config) (canonical []neutral.OutputSet, vectors map[mesh.ChannelKind][]neutral.OutputVector, issues *neutral.Issues, err error) {
	kinds := sortedChannelKinds(cfg.Channels)
	results := make([]channelResult, len(kinds))

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = len(kinds)
		if parallelism == 0 {
			parallelism = 1
		}
	}

	errOnce := errors.Once{}
	traverseErr := traverse.T{Limit: parallelism}.Each(len(kinds), func(i int) error {
		kind := kinds[i]
		path := cfg.Channels[kind]
		sets, vecs, chIssues, perr := parseChannelFile(ctx, path)
		if perr != nil {
			log.Error.Printf("channel %s (%s): %v", kind, path, perr)
			errOnce.Set(errors.E(perr, "parsing channel", kind.String(), path))
		}
		results[i] = channelResult{kind: kind, sets: sets, vectors: vecs, issues: chIssues, err: perr}
		return nil
	})
	if traverseErr != nil {
		return nil, nil, nil, traverseErr
	}
	if first := errOnce.Err(); first != nil {
		log.Error.Printf("channel parsing completed with failures; first: %v", first)
	}

	vectors = make(map[mesh.ChannelKind][]neutral.OutputVector, len(kinds))
	issues = &neutral.Issues{}
	for _, r := range results {
		if r.err != nil {
			continue
		}
		if canonical == nil && len(r.sets) > 0 {
			canonical = r.sets
		}
		vectors[r.kind] = r.vectors
		for _, item := range r.issues.Items() {
			issues.Add(item.Block, item.Reason)
		}
	}
	return canonical, vectors, issues, nil
}

func parseChannelFile(ctx context.Context, path string) (sets []neutral.OutputSet, vectors []neutral.OutputVector, issues *neutral.Issues, err error) {
	issues = &neutral.Issues{}
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, issues, err
	}
	defer file.CloseAndReport(ctx, f, &err)

	idx, err := neutral.ScanBlocks(f.Reader(ctx))
	if err != nil {
		return nil, nil, issues, err
	}
	sets = neutral.ExtractOutputSets(idx, issues)
	vectors = neutral.ExtractOutputVectors(idx, issues)
	return sets, vectors, issues, nil
}

func sortedChannelKinds(channels map[mesh.ChannelKind]string) []mesh.ChannelKind {
	kinds := make([]mesh.ChannelKind, 0, len(channels))
	for k := range channels {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

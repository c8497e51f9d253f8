package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/grailbio/base/file"

	"github.com/emsolution/femap2vtk/vtkio"
)

// fileSink implements vtkio.Sink over a base directory, joining names with
// "/" rather than filepath.Join so the same Config.OutputDir can name a
// remote path that file.Create understands (same convention as
// pileup/snp/output.go's mainPath+".ref.tsv" string concatenation).
type fileSink struct {
	ctx context.Context
	dir string
}

func newFileSink(ctx context.Context, dir string) *fileSink {
	return &fileSink{ctx: ctx, dir: dir}
}

func (s *fileSink) Create(name string) (io.WriteCloser, error) {
	path := s.dir + "/" + name
	// file.Create mirrors os.Create and does not create parent
	// directories, the same reason pileup.go calls os.MkdirAll before
	// writing its own per-shard temp files.
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, err
	}
	f, err := file.Create(s.ctx, path)
	if err != nil {
		return nil, err
	}
	return &fileHandle{ctx: s.ctx, f: f, w: f.Writer(s.ctx)}, nil
}

// fileHandle adapts a file.File (whose Writer and Close take a context) to
// plain io.WriteCloser, as vtkio.Sink expects.
type fileHandle struct {
	ctx context.Context
	f   file.File
	w   io.Writer
}

func (h *fileHandle) Write(p []byte) (int, error) { return h.w.Write(p) }
func (h *fileHandle) Close() error                { return h.f.Close(h.ctx) }

var _ vtkio.Sink = (*fileSink)(nil)

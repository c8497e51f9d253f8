package vtkio

import (
	"fmt"
	"io"
	"path"
)

// Sink abstracts the filesystem target a multi-block write is relative to.
// The pipeline package backs this with github.com/grailbio/base/file so
// that output paths work the same whether they're local or remote, the
// same role file.Create/file.CloseAndReport play in pileup/snp/output.go.
type Sink interface {
	// Create opens name (relative to the sink's root) for writing and
	// returns a handle the caller must Close.
	Create(name string) (io.WriteCloser, error)
}

// NamedGrid is one sub-block of a multi-block document: one property's
// subset of cells, sharing the parent mesh's point buffer per spec §9.
type NamedGrid struct {
	Name string
	Grid *UnstructuredGrid
}

// MultiBlock is one time step's document: every property's NamedGrid.
type MultiBlock struct {
	Blocks []NamedGrid
}

// WriteVTM writes mb as a vtkMultiBlockDataSet named vtmName, with each
// block's grid written to "<childDirName>/<title>_<k>.vtu", matching the
// on-disk layout of spec §6:
//
//	D/N/<title_i>.vtm
//	D/N/<title_i>/<title_i>_0.vtu
//	D/N/<title_i>/<title_i>_1.vtu
func WriteVTM(sink Sink, vtmName, title, childDirName string, mb *MultiBlock, ascii, compress bool) error {
	type childEntry struct {
		index int
		name  string
		rel   string
	}
	entries := make([]childEntry, len(mb.Blocks))
	for i, b := range mb.Blocks {
		childFile := fmt.Sprintf("%s_%d.vtu", title, i)
		rel := path.Join(childDirName, childFile)
		entries[i] = childEntry{index: i, name: b.Name, rel: rel}

		w, err := sink.Create(rel)
		if err != nil {
			return err
		}
		err = WriteVTU(w, b.Grid, ascii, compress)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	w, err := sink.Create(vtmName)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintln(w, `<?xml version="1.0"?>`)
	fmt.Fprintln(w, `<VTKFile type="vtkMultiBlockDataSet" version="1.0" byte_order="LittleEndian">`)
	fmt.Fprintln(w, `  <vtkMultiBlockDataSet>`)
	for _, e := range entries {
		fmt.Fprintf(w, `    <DataSet index="%d" name="%s" file="%s"/>`+"\n", e.index, e.name, e.rel)
	}
	fmt.Fprintln(w, `  </vtkMultiBlockDataSet>`)
	fmt.Fprintln(w, `</VTKFile>`)
	return nil
}

package vtkio

import (
	"fmt"
	"io"
	"strconv"
)

// CollectionEntry is one row of a .pvd index: a time step's value and the
// path (relative to the collection file) of its multi-block document.
type CollectionEntry struct {
	Timestep float64
	File     string
}

// WriteCollection writes entries, in the order given, as a VTK Collection
// document. Callers are responsible for sorting entries by step ID
// ascending (spec §4.8); this function does not re-sort, so the round-trip
// property in spec §8 holds as long as the caller's ordering is stable.
func WriteCollection(w io.Writer, entries []CollectionEntry) error {
	fmt.Fprintln(w, `<?xml version="1.0"?>`)
	fmt.Fprintln(w, `<VTKFile type="Collection" version="0.1" byte_order="LittleEndian">`)
	fmt.Fprintln(w, `  <Collection>`)
	for _, e := range entries {
		fmt.Fprintf(w, `    <DataSet timestep="%s" part="0" file="%s"/>`+"\n",
			strconv.FormatFloat(e.Timestep, 'g', -1, 64), e.File)
	}
	fmt.Fprintln(w, `  </Collection>`)
	fmt.Fprintln(w, `</VTKFile>`)
	return nil
}

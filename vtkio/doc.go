// Package vtkio writes the VTK XML file family this pipeline produces: a
// per-property vtkUnstructuredGrid (.vtu), a per-step vtkMultiBlockDataSet
// (.vtm) that groups those grids while sharing their point buffer, and a
// top-level Collection (.pvd) that lists every step.
//
// The writer supports both the ASCII and "appended" binary encodings VTK's
// XML schema allows; bit-exact equivalence between the two modes is not
// attempted and callers should not assert on it.
package vtkio

// Package mesh turns the flat records a neutral.Block extraction produces
// into a deduplicated, VTK-ready unstructured grid: points indexed by
// FEMAP node ID, cells indexed by FEMAP element ID, and the per-cell
// bookkeeping arrays (element ID, property ID, material ID, topology code)
// that the time-step writer attaches to every step's output.
package mesh

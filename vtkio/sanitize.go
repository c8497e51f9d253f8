package vtkio

import "github.com/emsolution/femap2vtk/neutral"

// SanitizeTitle is re-exported from neutral so that callers building VTK
// file names don't need to import the parser package just for this helper.
// The single source of truth for the forbidden-character set lives in
// neutral.SanitizeTitle.
func SanitizeTitle(title string) string {
	return neutral.SanitizeTitle(title)
}

package neutral

// Block IDs for the record families this package understands. See spec
// §4.2 for the per-block stride and field layout.
const (
	blockHeader     = 100
	blockProperties = 402
	blockNodes      = 403
	blockElements   = 404
	blockMaterials  = 601
	blockOutputSets = 450
	blockVectors    = 1051
)

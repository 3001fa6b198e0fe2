// Package builder defines shared constants used by the materializer and the
// generation driver.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the function name for context.
//-----------------------------------------------------------------------------

const (
	// MethodOrdinal is the canonical name for Ordinal.
	MethodOrdinal = "Ordinal"
	// MethodPair is the canonical name for Pair.
	MethodPair = "Pair"
	// MethodMaterialize is the canonical name for Materialize and MaterializeInto.
	MethodMaterialize = "Materialize"
	// MethodOrdinals is the canonical name for Ordinals.
	MethodOrdinals = "Ordinals"
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Vertex Count Bounds
//-----------------------------------------------------------------------------

// MinGraphVertices is the smallest vertex count with at least one edge slot.
const MinGraphVertices = 2

// MinGenerateMaxVertices is the smallest accepted upper bound for Generate.
// Requests for N <= 2 are rejected.
const MinGenerateMaxVertices = 3

//-----------------------------------------------------------------------------
// Parallel Generation
//-----------------------------------------------------------------------------

// DefaultWorkers runs generation on the calling goroutine.
const DefaultWorkers = 1

// groupBuffer is the per-group channel depth in parallel generation; it
// bounds how far a group can run ahead of the sink.
const groupBuffer = 256

package mesh

import "errors"

// Input errors are fatal: the affected stage aborts immediately.
var (
	ErrEmptyMesh = errors.New("mesh has no vertices")
	ErrFlatMesh  = errors.New("mesh has no height along the reference axis")
	ErrEmptyCut  = errors.New("cut produced no faces")
)

// Geometry errors are reported to the caller, which decides whether the
// pipeline continues.
var (
	ErrWatertight = errors.New("mesh is watertight: no boundary to seam")
	ErrLoopSplit  = errors.New("could not separate top and bottom boundary loops")
	ErrNoPath     = errors.New("no path between top and bottom boundaries")
)

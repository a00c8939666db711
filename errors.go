package svgenius

import "errors"

// Failure kinds reported by the engine. Operations that fail return their
// input unchanged together with an error wrapping one of these, so callers
// can use the result leniently or test the error with errors.Is.
var (
	// ErrParseIncomplete reports trailing or malformed path data. The
	// complete commands that precede it are still returned.
	ErrParseIncomplete = errors.New("incomplete path data")

	// ErrIndexOutOfRange reports an anchor index outside the path.
	ErrIndexOutOfRange = errors.New("anchor index out of range")

	// ErrStructuralMismatch reports command sequences that differ in
	// letters or parameter counts.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrDegenerateGeometry reports an empty path or a zero sized segment
	// or bounding box.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

package sortition

// DrawResult is the outcome of a single draw.
//
// Invariant: 0 <= Index < the max passed to Draw.
type DrawResult struct {
	// Index is the drawn value in [0, max).
	Index int
	// Timestamp is the call time in ISO-8601 format with millisecond
	// precision. It reflects when the draw happened regardless of whether
	// the timestamp was mixed into the seed.
	Timestamp string
}

// MultiDrawResult is the outcome of a multi-position draw.
//
// Invariant: len(Indices) equals the requested count; order matches request
// order. The call fails outright rather than returning a partial result.
type MultiDrawResult struct {
	// Indices holds one drawn value per requested position.
	Indices []int
	// Timestamp is captured once at the start of the call, independent of
	// any per-position timestamps used internally for seeding.
	Timestamp string
}

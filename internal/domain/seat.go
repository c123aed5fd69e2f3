package domain

// SeatsPerProjection is the fixed hall size; every projection gets seats
// numbered 1 through SeatsPerProjection.
const SeatsPerProjection = 30

type Seat struct {
	Number int
	Taken  bool
}

package domain

// Title identifies a scheduled work. Projections and reservations are
// matched by exact name equality, so two projections created with equal
// names share reservation state.
type Title struct {
	Name string
}

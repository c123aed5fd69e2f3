package domain

// Participant is the named party a reservation is made for.
type Participant struct {
	FirstName string
	LastName  string
}

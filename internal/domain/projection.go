package domain

import (
	"time"

	"github.com/google/uuid"
)

// Projection is one scheduled showing of a Title. It starts with thirty
// free seats and lives for the process lifetime; seats only ever move from
// free to taken.
type Projection struct {
	ID        uuid.UUID
	Title     Title
	StartTime time.Time
	seats     []Seat
}

func NewProjection(title Title, startTime time.Time) *Projection {
	seats := make([]Seat, SeatsPerProjection)
	for i := range seats {
		seats[i].Number = i + 1
	}

	return &Projection{
		ID:        uuid.New(),
		Title:     title,
		StartTime: startTime,
		seats:     seats,
	}
}

// Seats returns a copy of the projection's seats. Mutating the returned
// slice has no effect on reservation state.
func (p *Projection) Seats() []Seat {
	seats := make([]Seat, len(p.seats))
	copy(seats, p.seats)

	return seats
}

// SeatTaken reports whether the seat with the given number is taken. It
// returns false for numbers that match no seat.
func (p *Projection) SeatTaken(number int) bool {
	for _, seat := range p.seats {
		if seat.Number == number {
			return seat.Taken
		}
	}

	return false
}

// TakeSeat marks the seat with the given number as taken. Numbers that
// match no seat are ignored.
func (p *Projection) TakeSeat(number int) {
	for i := range p.seats {
		if p.seats[i].Number == number {
			p.seats[i].Taken = true
			return
		}
	}
}

// View returns a read-only snapshot of the projection, detached from its
// live seat state.
func (p *Projection) View() ProjectionView {
	return ProjectionView{
		ID:        p.ID,
		Title:     p.Title,
		StartTime: p.StartTime,
		Seats:     p.Seats(),
	}
}

// ProjectionView is a value-copied snapshot of a scheduled projection.
type ProjectionView struct {
	ID        uuid.UUID
	Title     Title
	StartTime time.Time
	Seats     []Seat
}

package booking

import (
	"strings"
	"time"

	"github.com/NikolayySt/tests-exam-project/internal/domain"
)

const (
	// MinScheduleLead is how far in the future a projection must start at
	// the moment it is scheduled, so a booking window exists before the
	// reservation cutoff closes.
	MinScheduleLead = 2 * time.Hour

	// ReservationCutoff is how long before a projection's start time
	// reservations for its title close.
	ReservationCutoff = time.Hour

	maxSeatNumber = 30
)

// Manager owns the collection of scheduled projections and applies the
// business rules for scheduling and reserving. All state is in-memory and
// lives for the process lifetime.
//
// Manager is not safe for concurrent use: Reserve runs a check-then-act
// sequence over shared seat state, so concurrent callers must serialize
// access with an external lock.
type Manager struct {
	clock       Clock
	projections []*domain.Projection
}

// NewManager returns a Manager that reads time from the given clock.
func NewManager(clock Clock) *Manager {
	return &Manager{clock: clock}
}

// Schedule validates and stores a new projection of title starting at
// startTime. The projection is created with thirty free seats. Several
// projections of the same title may be scheduled at different times; they
// are stored separately. Nothing is stored when validation fails.
//
// A whitespace-only title name is accepted here, while Reserve rejects it.
func (m *Manager) Schedule(title *domain.Title, startTime *time.Time) error {
	if title == nil || title.Name == "" {
		return domain.ErrTitleNameEmpty
	}

	if startTime == nil {
		return domain.ErrStartTimeRequired
	}

	if startTime.Before(m.clock.Now().Add(MinScheduleLead)) {
		return domain.ErrStartTimeTooSoon
	}

	m.projections = append(m.projections, domain.NewProjection(*title, *startTime))

	return nil
}

// Reserve validates a reservation request and, on success, marks the seat
// with the given number as taken on every projection whose title name
// equals the requested title's name. Seat state is shared across all
// showings of a title: a seat taken for one showing is taken for all of
// them, and if any showing of the title is past the reservation cutoff the
// whole title is closed for reservations.
//
// The first failing rule wins; nothing is mutated on failure. Seat number
// 0 passes the range check but matches no seat, so reserving it succeeds
// without changing any state.
func (m *Manager) Reserve(participant *domain.Participant, title *domain.Title, seatNumber int) error {
	if err := validateParticipant(participant); err != nil {
		return err
	}

	if err := validateTitle(title); err != nil {
		return err
	}

	if err := m.validateSeat(title.Name, seatNumber); err != nil {
		return err
	}

	if err := m.validateReservationTime(title.Name); err != nil {
		return err
	}

	for _, projection := range m.matching(title.Name) {
		projection.TakeSeat(seatNumber)
	}

	return nil
}

// Projections returns a snapshot of the scheduled projections in insertion
// order, detached from the manager's live state.
func (m *Manager) Projections() []domain.ProjectionView {
	views := make([]domain.ProjectionView, len(m.projections))
	for i, projection := range m.projections {
		views[i] = projection.View()
	}

	return views
}

func validateParticipant(participant *domain.Participant) error {
	if participant == nil {
		return domain.ErrParticipantRequired
	}

	if participant.FirstName == "" || participant.LastName == "" {
		return domain.ErrParticipantNameEmpty
	}

	if strings.TrimSpace(participant.FirstName) == "" || strings.TrimSpace(participant.LastName) == "" {
		return domain.ErrParticipantNameBlank
	}

	return nil
}

func validateTitle(title *domain.Title) error {
	if title == nil {
		return domain.ErrTitleRequired
	}

	if title.Name == "" {
		return domain.ErrTitleNameEmpty
	}

	if strings.TrimSpace(title.Name) == "" {
		return domain.ErrTitleNameBlank
	}

	return nil
}

func (m *Manager) validateSeat(titleName string, seatNumber int) error {
	if seatNumber < 0 || seatNumber > maxSeatNumber {
		return domain.ErrSeatOutOfRange
	}

	for _, projection := range m.matching(titleName) {
		if projection.SeatTaken(seatNumber) {
			return domain.ErrSeatTaken
		}
	}

	return nil
}

func (m *Manager) validateReservationTime(titleName string) error {
	cutoff := m.clock.Now().Add(ReservationCutoff)

	for _, projection := range m.matching(titleName) {
		if projection.StartTime.Before(cutoff) {
			return domain.ErrTooLateToReserve
		}
	}

	return nil
}

func (m *Manager) matching(titleName string) []*domain.Projection {
	var matched []*domain.Projection

	for _, projection := range m.projections {
		if projection.Title.Name == titleName {
			matched = append(matched, projection)
		}
	}

	return matched
}

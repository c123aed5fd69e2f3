package app

import (
	"errors"
	"net/http"

	"github.com/NikolayySt/tests-exam-project/api"
	"github.com/NikolayySt/tests-exam-project/internal/domain"
)

func (app *application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	participant := domain.Participant{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	title := domain.Title{Name: input.Title}

	err = app.manager.Reserve(&participant, &title, input.SeatNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatTaken),
			errors.Is(err, domain.ErrTooLateToReserve):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrParticipantRequired),
			errors.Is(err, domain.ErrParticipantNameEmpty),
			errors.Is(err, domain.ErrParticipantNameBlank),
			errors.Is(err, domain.ErrTitleRequired),
			errors.Is(err, domain.ErrTitleNameEmpty),
			errors.Is(err, domain.ErrTitleNameBlank),
			errors.Is(err, domain.ErrSeatOutOfRange):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ReservationResponse{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Title:      input.Title,
		SeatNumber: input.SeatNumber,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

package app

import (
	"errors"
	"net/http"

	"github.com/NikolayySt/tests-exam-project/api"
	"github.com/NikolayySt/tests-exam-project/internal/domain"
)

func (app *application) CreateProjection(w http.ResponseWriter, r *http.Request) {
	var input api.CreateProjectionRequest

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

	title := domain.Title{Name: input.Title}

	err = app.manager.Schedule(&title, input.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTitleNameEmpty),
			errors.Is(err, domain.ErrStartTimeRequired),
			errors.Is(err, domain.ErrStartTimeTooSoon):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	projections := app.manager.Projections()
	resp := toProjectionResponse(projections[len(projections)-1])

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ListProjections(w http.ResponseWriter, r *http.Request) {
	projections := app.manager.Projections()

	resp := api.ProjectionListResponse{
		Projections: make([]api.ProjectionResponse, len(projections)),
	}

	for i, projection := range projections {
		resp.Projections[i] = toProjectionResponse(projection)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toProjectionResponse(projection domain.ProjectionView) api.ProjectionResponse {
	seats := make([]api.Seat, len(projection.Seats))
	for i, seat := range projection.Seats {
		seats[i] = api.Seat{
			Number: seat.Number,
			Taken:  seat.Taken,
		}
	}

	return api.ProjectionResponse{
		Id:        projection.ID,
		Title:     projection.Title.Name,
		StartTime: projection.StartTime,
		Seats:     seats,
	}
}

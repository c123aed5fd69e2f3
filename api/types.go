// Package api defines the request and response bodies of the HTTP surface.
package api

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectionRequest struct {
	Title     string     `json:"title" validate:"required"`
	StartTime *time.Time `json:"startTime" validate:"required"`
}

type CreateReservationRequest struct {
	FirstName  string `json:"firstName" validate:"required,notblank"`
	LastName   string `json:"lastName" validate:"required,notblank"`
	Title      string `json:"title" validate:"required,notblank"`
	SeatNumber int    `json:"seatNumber"`
}

type Seat struct {
	Number int  `json:"number"`
	Taken  bool `json:"taken"`
}

type ProjectionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	Seats     []Seat    `json:"seats"`
}

type ProjectionListResponse struct {
	Projections []ProjectionResponse `json:"projections"`
}

type ReservationResponse struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Title      string `json:"title"`
	SeatNumber int    `json:"seatNumber"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

package domain

import "errors"

var (
	ErrTitleRequired        = errors.New("title must be provided")
	ErrTitleNameEmpty       = errors.New("title name must not be empty")
	ErrTitleNameBlank       = errors.New("title name must not be blank")
	ErrStartTimeRequired    = errors.New("projection start time must be provided")
	ErrStartTimeTooSoon     = errors.New("projection must start at least two hours from now")
	ErrParticipantRequired  = errors.New("participant must be provided")
	ErrParticipantNameEmpty = errors.New("participant names must not be empty")
	ErrParticipantNameBlank = errors.New("participant names must not be blank")
	ErrSeatOutOfRange       = errors.New("seat number must be between 0 and 30")
	ErrSeatTaken            = errors.New("seat is already taken")
	ErrTooLateToReserve     = errors.New("too late to reserve for this title")
)

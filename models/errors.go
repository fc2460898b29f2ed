package models

import (
	"errors"
	"fmt"
)

var (
	// ErrTrainNotFound is returned when no train has the requested number
	ErrTrainNotFound = errors.New("train not found")

	// ErrNoAvailableSeat is returned when every seat of a category is booked
	ErrNoAvailableSeat = errors.New("no available seats of the selected type")

	// ErrIntegrityViolation is the parent of all data integrity errors
	ErrIntegrityViolation = errors.New("integrity violation")

	ErrDuplicateTrain  = fmt.Errorf("%w: train number already exists", ErrIntegrityViolation)
	ErrInventoryExists = fmt.Errorf("%w: seat inventory already exists", ErrIntegrityViolation)
	ErrSeatOutOfRange  = fmt.Errorf("%w: seat number must be between 1 and %d", ErrIntegrityViolation, SeatsPerTrain)
)

// ValidationError reports malformed input
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

func (e ValidationError) Is(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}

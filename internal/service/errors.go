package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field is empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so responses never reveal which one was wrong.
	ErrInvalidCredentials = errors.New("credentials are invalid")
)

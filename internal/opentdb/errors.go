package opentdb

import "errors"

var (
	// ErrEmptyResult is returned when the request succeeded but yielded no usable questions.
	ErrEmptyResult = errors.New("no questions returned")
	// ErrTransportFailure is returned when the request itself failed.
	ErrTransportFailure = errors.New("failed to fetch questions")
)

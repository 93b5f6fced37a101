package service

import "errors"

var (
	// ErrInvalidArgument is returned when a plan or payment precondition is violated.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoAffordableTerm is returned when no compared term fits the monthly budget.
	ErrNoAffordableTerm = errors.New("no term fits the maximum monthly payment")
)

package singlell

import "errors"

// Values the list panics with when a narrow precondition is broken.
var (
	ErrEmptyList   = errors.New("singlell: list is empty")
	ErrPastTheEnd  = errors.New("singlell: iterator is past the end")
	ErrNoSuccessor = errors.New("singlell: position has no successor")
)

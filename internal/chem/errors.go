package chem

import "errors"

var (
	// ErrParse reports a malformed formula or equation.
	ErrParse = errors.New("chem: parse failure")

	// ErrAlgebra reports a balancing system with no usable solution.
	ErrAlgebra = errors.New("chem: algebra failure")

	// ErrNotSupported marks structure analysis that is not implemented yet.
	ErrNotSupported = errors.New("chem: not yet supported")
)

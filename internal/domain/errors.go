package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a saturation calculation can produce.
type ErrorKind int

const (
	// KindUnknown is any error not raised by this package.
	KindUnknown ErrorKind = iota
	// KindDomain is an input outside the valid domain of a correlation.
	KindDomain
	// KindInputFormat is a temperature that could not be parsed.
	KindInputFormat
	// KindComputation is any other arithmetic fault during evaluation.
	KindComputation
)

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindDomain:
		return "domain_error"
	case KindInputFormat:
		return "input_error"
	case KindComputation:
		return "computation_error"
	default:
		return "unknown_error"
	}
}

// DomainError reports a temperature outside the mathematically valid domain
// of a correlation.
type DomainError struct {
	Reason string
	Kelvin float64
}

func (e *DomainError) Error() string {
	return e.Reason
}

// InputFormatError reports a temperature that is not a finite number.
type InputFormatError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid temperature %q: %s", e.Input, e.Reason)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

// ComputationError wraps an unexpected arithmetic fault.
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	var inputErr *InputFormatError
	var compErr *ComputationError

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &domainErr):
		return KindDomain
	case errors.As(err, &inputErr):
		return KindInputFormat
	case errors.As(err, &compErr):
		return KindComputation
	default:
		return KindUnknown
	}
}

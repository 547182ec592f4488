// Package errs provides structured error types and helpers for the padic library.
package errs

import (
	"strconv"
	"strings"
)

// Code identifies a conversion failure category.
type Code string

const (
	// CodeInvalidPrime indicates the modulus failed the primality/range check.
	CodeInvalidPrime Code = "invalid_prime"
	// CodeDivisionByZero indicates a malformed rational with a zero denominator.
	CodeDivisionByZero Code = "division_by_zero"
	// CodePrecisionInsufficient indicates rational reconstruction could not find
	// a coprime pair within the precision-derived bound.
	CodePrecisionInsufficient Code = "precision_insufficient"
	// CodeNonIntegerResult indicates an integer was requested from a value whose
	// reconstructed rational has a denominator other than 1.
	CodeNonIntegerResult Code = "non_integer_result"
	// CodeInvalidInput indicates unparseable or otherwise malformed caller input.
	CodeInvalidInput Code = "invalid_input"
)

// E captures structured error information produced across the padic stack.
type E struct {
	Code    Code
	Prime   string
	Value   string
	Message string

	cause error
}

// Option configures an error envelope.
type Option func(*E)

// New constructs an error envelope for the failure code.
func New(code Code, opts ...Option) *E {
	e := &E{
		Code:    code,
		Prime:   "",
		Value:   "",
		Message: "",
		cause:   nil,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithMessage attaches a human-readable message to the error.
func WithMessage(message string) Option {
	trimmed := strings.TrimSpace(message)
	return func(e *E) {
		e.Message = trimmed
	}
}

// WithPrime records the modulus involved in the failure.
func WithPrime(prime string) Option {
	trimmed := strings.TrimSpace(prime)
	return func(e *E) {
		e.Prime = trimmed
	}
}

// WithValue records the offending input value.
func WithValue(value string) Option {
	trimmed := strings.TrimSpace(value)
	return func(e *E) {
		e.Value = trimmed
	}
}

// WithCause sets the underlying cause error.
func WithCause(err error) Option {
	return func(e *E) {
		e.cause = err
	}
}

func (e *E) Error() string {
	if e == nil {
		return "<nil>"
	}
	var parts []string

	code := strings.TrimSpace(string(e.Code))
	if code == "" {
		code = "unknown"
	}
	parts = append(parts, "code="+code)

	if e.Prime != "" {
		parts = append(parts, "prime="+e.Prime)
	}
	if e.Value != "" {
		parts = append(parts, "value="+strconv.Quote(e.Value))
	}
	if e.Message != "" {
		parts = append(parts, "message="+strconv.Quote(e.Message))
	}
	if e.cause != nil {
		parts = append(parts, "cause="+strconv.Quote(e.cause.Error()))
	}

	return strings.Join(parts, " ")
}

func (e *E) Unwrap() error { return e.cause }

// CodeOf extracts the failure code from err, or the empty code when err does
// not carry a padic envelope.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*E); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// IsCode reports whether err carries the given failure code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

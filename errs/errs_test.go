package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormattingIncludesPrimeAndValue(t *testing.T) {
	err := New(
		CodePrecisionInsufficient,
		WithPrime("5"),
		WithValue("12345/67891"),
		WithMessage("no coprime pair within bound 1581"),
		WithCause(errors.New("euclid search exhausted")),
	)

	out := err.Error()
	if !strings.Contains(out, "code=precision_insufficient") {
		t.Fatalf("expected code marker in error string: %s", out)
	}
	if !strings.Contains(out, "prime=5") {
		t.Fatalf("expected prime marker in error string: %s", out)
	}
	if !strings.Contains(out, `value="12345/67891"`) {
		t.Fatalf("expected value marker in error string: %s", out)
	}
	if !strings.Contains(out, `message="no coprime pair within bound 1581"`) {
		t.Fatalf("expected message in error string: %s", out)
	}
	if !strings.Contains(out, `cause="euclid search exhausted"`) {
		t.Fatalf("expected cause in error string: %s", out)
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("root")
	err := New(CodeInvalidPrime, WithCause(cause))
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}

func TestCodeOfWalksWrappedErrors(t *testing.T) {
	inner := New(CodeNonIntegerResult, WithMessage("denominator is 3"))
	wrapped := fmt.Errorf("to_int: %w", inner)

	if got := CodeOf(wrapped); got != CodeNonIntegerResult {
		t.Fatalf("expected non_integer_result, got %q", got)
	}
	if !IsCode(wrapped, CodeNonIntegerResult) {
		t.Fatalf("expected IsCode to match through wrapping")
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty code for plain error, got %q", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Fatalf("expected empty code for nil error, got %q", got)
	}
}

func TestNilEnvelopeRendersPlaceholder(t *testing.T) {
	var e *E
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil> rendering, got %q", e.Error())
	}
}

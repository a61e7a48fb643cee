package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"server", NewServer(errors.New("boom")), http.StatusInternalServerError},
		{"conflict", NewBusiness("Username already exists", CodeConflict), http.StatusConflict},
		{"unauthorized", NewBusiness("Invalid credentials", CodeUnauthorized), http.StatusUnauthorized},
		{"invalid input", NewInvalidInput(errors.New("bad field")), http.StatusUnprocessableEntity},
		{"invalid format", NewInvalidFormat(), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tc.err, &gerr) {
				t.Fatalf("error is not a *Error: %v", tc.err)
			}
			if got := gerr.StatusCode(); got != tc.want {
				t.Errorf("StatusCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestServerErrorHidesInternals(t *testing.T) {
	cause := errors.New("pgx: connection refused")
	err := NewServer(cause)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error is not a *Error")
	}

	if gerr.Msg() != "Internal server error" {
		t.Errorf("Msg() = %q, want generic message", gerr.Msg())
	}
	if !errors.Is(err, cause) {
		t.Error("underlying cause must stay reachable via errors.Is for logging")
	}
}

func TestInvalidInputFieldPairs(t *testing.T) {
	err := NewInvalidInput(nil, "code", "must be 6 digits")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error is not a *Error")
	}
	if gerr.Fields()["code"] != "must be 6 digits" {
		t.Errorf("Fields() = %v, want code entry", gerr.Fields())
	}
}

package validator

import (
	"errors"
	"strings"
	"testing"
)

type sampleRequest struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,password"`
}

func TestV10ValidatorValidate(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	tests := []struct {
		name      string
		in        sampleRequest
		wantField string
	}{
		{
			name: "valid",
			in:   sampleRequest{Username: "alice", Password: "correct horse"},
		},
		{
			name:      "missing username",
			in:        sampleRequest{Password: "correct horse"},
			wantField: "username",
		},
		{
			name:      "password too short",
			in:        sampleRequest{Username: "alice", Password: "short"},
			wantField: "password",
		},
		{
			name:      "password too long",
			in:        sampleRequest{Username: "alice", Password: strings.Repeat("x", 73)},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var vErr V10ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error = %v, want V10ValidationError", err)
			}
			if _, ok := vErr.Values()[tt.wantField]; !ok {
				t.Fatalf("Validate() fields = %v, want key %q", vErr.Values(), tt.wantField)
			}
		})
	}
}

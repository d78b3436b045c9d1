package validate

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
)

func TestNotBlank(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "plain", value: "hello", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "whitespace_only", value: "   \t", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NotBlank("title", tc.value)
			if tc.ok && err != nil {
				t.Fatalf("NotBlank(%q): unexpected error %v", tc.value, err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("NotBlank(%q): expected error", tc.value)
				}
				if !errors.Is(err, apperrors.ErrInvalidArgument) {
					t.Fatalf("NotBlank(%q): error does not wrap ErrInvalidArgument: %v", tc.value, err)
				}
			}
		})
	}
}

func TestIntRange(t *testing.T) {
	cases := []struct {
		name  string
		value int
		ok    bool
	}{
		{name: "lower_bound", value: 1, ok: true},
		{name: "upper_bound", value: 5, ok: true},
		{name: "below", value: 0, ok: false},
		{name: "above", value: 6, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := IntRange("rating", tc.value, 1, 5)
			if tc.ok != (err == nil) {
				t.Fatalf("IntRange(%d): got err=%v, want ok=%v", tc.value, err, tc.ok)
			}
		})
	}
}

func TestMaxLen(t *testing.T) {
	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'a'
	}
	if err := MaxLen("text", string(long), 2000); err == nil {
		t.Fatalf("MaxLen: expected error for 2001 chars")
	}
	if err := MaxLen("text", string(long[:2000]), 2000); err != nil {
		t.Fatalf("MaxLen: unexpected error at exactly 2000 chars: %v", err)
	}
}

func TestRequiredID(t *testing.T) {
	if err := RequiredID("offer_id", uuid.Nil); err == nil {
		t.Fatalf("RequiredID: expected error for nil id")
	}
	if err := RequiredID("offer_id", uuid.New()); err != nil {
		t.Fatalf("RequiredID: unexpected error: %v", err)
	}
}

func TestDateString(t *testing.T) {
	if err := DateString("expires_on", "2026-09-01"); err != nil {
		t.Fatalf("DateString: unexpected error: %v", err)
	}
	if err := DateString("expires_on", "not-a-date"); err == nil {
		t.Fatalf("DateString: expected error for garbage input")
	}
}

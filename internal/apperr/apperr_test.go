package apperr

import (
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{Validation("bad input"), KindValidation},
		{NotFound("missing"), KindNotFound},
		{Conflict("duplicate"), KindConflict},
		{Limit("too many"), KindLimit},
		{Policy("not allowed"), KindPolicy},
		{Auth("invalid credentials"), KindAuth},
		{fmt.Errorf("plain"), KindUnknown},
		{nil, KindUnknown},
	}

	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create category: %w", Conflict("category already exists"))
	if !Is(err, KindConflict) {
		t.Errorf("wrapped conflict not recognized, kind = %v", KindOf(err))
	}
}

func TestErrorMessage(t *testing.T) {
	err := Policy("default categories cannot be removed")
	if err.Error() != "default categories cannot be removed" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

package apperror

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestKindGRPCCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want codes.Code
	}{
		{KindValidation, codes.InvalidArgument},
		{KindConflict, codes.AlreadyExists},
		{KindNotFound, codes.NotFound},
		{KindAuthorization, codes.PermissionDenied},
		{KindBusinessRule, codes.FailedPrecondition},
		{KindInternal, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.GRPCCode(); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	base := Conflict(CodeShiftAlreadyOpen, "a shift is already open")
	wrapped := fmt.Errorf("open shift: %w", base)

	if KindOf(wrapped) != KindConflict {
		t.Fatalf("expected conflict, got %v", KindOf(wrapped))
	}
	if CodeOf(wrapped) != CodeShiftAlreadyOpen {
		t.Fatalf("expected code %s, got %s", CodeShiftAlreadyOpen, CodeOf(wrapped))
	}
	if !errors.Is(wrapped, Conflict(CodeShiftAlreadyOpen, "other text")) {
		t.Fatal("expected errors.Is to match by kind and code")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Fatal("plain errors are internal")
	}
}

func TestWithCopiesMetadata(t *testing.T) {
	base := BusinessRule(CodeLowFloatUnconfirmed, "low float", map[string]string{"categories": "cash"})
	next := base.With("threshold", "200")

	if _, ok := base.Metadata["threshold"]; ok {
		t.Fatal("With must not mutate the receiver")
	}
	if next.Metadata["categories"] != "cash" || next.Metadata["threshold"] != "200" {
		t.Fatalf("unexpected metadata %v", next.Metadata)
	}
}

func TestValidationError(t *testing.T) {
	err := Validation(CodeInvalidQuantity, "leftover_qty", "must be non-negative")
	if err.Error() != "validation: leftover_qty: must be non-negative" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Metadata["field"] != "leftover_qty" {
		t.Fatalf("expected field metadata, got %v", err.Metadata)
	}
}

package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsErrorPreservesType(t *testing.T) {
	ctx := context.Background()

	base := NewError(ctx, LayerRepository, ErrorTypeNotFound, "chat not found", nil, "260aa1c7-4863-4429-a274-de4478d4b4e0")
	wrapped := AsError(ctx, LayerDomain, base, "failed to load chat")
	rewrapped := AsError(ctx, LayerHandler, fmt.Errorf("handler: %w", wrapped), "request failed")

	if TypeOf(rewrapped) != ErrorTypeNotFound {
		t.Fatalf("TypeOf() = %v, want %v", TypeOf(rewrapped), ErrorTypeNotFound)
	}
	if HTTPStatus(rewrapped) != http.StatusNotFound {
		t.Fatalf("HTTPStatus() = %d, want %d", HTTPStatus(rewrapped), http.StatusNotFound)
	}
	if !IsNotFound(rewrapped) {
		t.Fatal("IsNotFound() = false, want true")
	}
	if CodeOf(rewrapped) != base.Code {
		t.Fatalf("CodeOf() = %q, want %q", CodeOf(rewrapped), base.Code)
	}
}

func TestAsErrorUntypedDefaultsToInternal(t *testing.T) {
	err := AsError(context.Background(), LayerDomain, errors.New("boom"), "completion call failed")
	if TypeOf(err) != ErrorTypeInternal {
		t.Fatalf("TypeOf() = %v, want %v", TypeOf(err), ErrorTypeInternal)
	}
	if HTTPStatus(err) != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus() = %d, want 500", HTTPStatus(err))
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[ErrorType]int{
		ErrorTypeValidation:   http.StatusBadRequest,
		ErrorTypeNotFound:     http.StatusNotFound,
		ErrorTypeUnauthorized: http.StatusUnauthorized,
		ErrorTypeConflict:     http.StatusConflict,
		ErrorTypeUpstream:     http.StatusInternalServerError,
		ErrorTypeInternal:     http.StatusInternalServerError,
	}
	for typ, want := range cases {
		err := NewError(context.Background(), LayerDomain, typ, "x", nil, "")
		if got := HTTPStatus(err); got != want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", typ, got, want)
		}
	}
}

func TestErrorStringCarriesLayer(t *testing.T) {
	cases := map[Layer]string{
		LayerHandler:        "handler: boom",
		LayerDomain:         "domain: boom",
		LayerRepository:     "repository: boom",
		LayerInfrastructure: "infrastructure: boom",
	}
	for layer, want := range cases {
		err := NewError(context.Background(), layer, ErrorTypeInternal, "boom", nil, "")
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}
}

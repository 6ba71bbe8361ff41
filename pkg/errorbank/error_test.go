package errorbank

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"bad request", BadRequest("name is required"), http.StatusBadRequest},
		{"conflict", Conflict("duplicate phone"), http.StatusBadRequest},
		{"not found", NotFound("customer not found"), http.StatusNotFound},
		{"internal", Internal("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFromWrapsUnexpectedErrors(t *testing.T) {
	cause := errors.New("disk on fire")
	appErr := From(fmt.Errorf("load: %w", cause))
	if appErr.Kind() != KindInternal {
		t.Fatalf("expected internal kind, got %s", appErr.Kind())
	}
	if appErr.Message() != "load: disk on fire" {
		t.Fatalf("expected original message to be echoed, got %q", appErr.Message())
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
}

func TestFromKeepsAppErrors(t *testing.T) {
	original := NotFound("bill not found")
	wrapped := fmt.Errorf("handler: %w", original)
	if got := From(wrapped); got != original {
		t.Fatalf("expected the wrapped AppError to be returned as-is")
	}
	if !Is(wrapped, KindNotFound) {
		t.Fatalf("expected Is to match not_found")
	}
}

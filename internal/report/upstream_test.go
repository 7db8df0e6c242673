package report

import (
	"errors"
	"fmt"
	"testing"
)

func TestCauseOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"labeled decode", Upstream(CauseDecode, errors.New("bad json")), CauseDecode},
		{"labeled semantic", Upstream(CauseSemantic, errors.New("code NoRoute")), CauseSemantic},
		{"wrapped label survives", fmt.Errorf("fetch: %w", Upstream(CauseStatus, errors.New("502"))), CauseStatus},
		{"unlabeled defaults to transport", errors.New("dial tcp: timeout"), CauseTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CauseOf(tt.err); got != tt.want {
				t.Errorf("CauseOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Upstream(CauseTransport, inner)

	if !errors.Is(err, inner) {
		t.Error("wrapped error should be reachable via errors.Is")
	}
}

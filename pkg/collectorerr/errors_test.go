package collectorerr

import (
	"errors"
	"testing"
)

func TestCollectorErrorUnwrap(t *testing.T) {
	err := NewCollectorError(KindTimeout, "leaf1", "show interfaces", errors.New("i/o timeout"))
	if !errors.Is(err, ErrCollector) {
		t.Error("expected errors.Is to match ErrCollector sentinel")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection retriable", NewCollectorError(KindConnection, "d1", "", nil), true},
		{"timeout retriable", NewCollectorError(KindTimeout, "d1", "", nil), true},
		{"authentication not retriable", NewCollectorError(KindAuthentication, "d1", "", nil), false},
		{"command not retriable", NewCollectorError(KindCommand, "d1", "show x", nil), false},
		{"parse not retriable", NewCollectorError(KindParse, "d1", "", nil), false},
		{"inventory connection retriable", NewInventoryConnectionError(nil), true},
		{"inventory 5xx retriable", NewInventoryAPIError(503, nil), true},
		{"inventory 4xx not retriable", NewInventoryAPIError(404, nil), false},
		{"inventory validation not retriable", NewInventoryValidationError("vid", "99999", nil), false},
		{"config error not retriable", NewConfigError("a.yaml", "key", nil), false},
	}
	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Errorf("%s: IsRetryable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCommandErrorTruncatesOutput(t *testing.T) {
	big := make([]byte, 1000)
	for i := range big {
		big[i] = 'x'
	}
	err := NewCommandError("d1", "show tech-support", string(big), errors.New("rejected"))
	if len(err.Output) >= 1000 {
		t.Errorf("expected truncated output, got length %d", len(err.Output))
	}
}

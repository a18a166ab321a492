package garnet

import (
	"strings"
	"testing"

	"github.com/chazu/garnet/config"
)

func newRuby(t *testing.T) *Ruby {
	t.Helper()
	r := New(WithDebugAssertions(true))
	t.Cleanup(r.Close)
	return r
}

func wantErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want one containing %q", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("error = %q, want it to contain %q", err, substr)
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Runtime.HeapSlots = 128
	cfg.Runtime.DebugAssertions = true

	r := New(WithConfig(cfg))
	defer r.Close()
	if !r.DebugAssertions() {
		t.Error("DebugAssertions() = false, want true from config")
	}
	if r.ID().String() == "" {
		t.Error("runtime has no id")
	}

	other := New()
	defer other.Close()
	if r.ID() == other.ID() {
		t.Errorf("two runtimes share id %s", r.ID())
	}
}

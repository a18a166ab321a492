package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[runtime]
debug_assertions = true
heap_slots = 4096

[log]
verbosity = 2
path = "garnet.log"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !c.Runtime.DebugAssertions {
		t.Error("runtime debug_assertions = false, want true")
	}
	if c.Runtime.HeapSlots != 4096 {
		t.Errorf("runtime heap_slots = %d, want 4096", c.Runtime.HeapSlots)
	}
	if c.Log.Verbosity != 2 {
		t.Errorf("log verbosity = %d, want 2", c.Log.Verbosity)
	}
	if got, want := c.LogPath(), filepath.Join(c.Dir, "garnet.log"); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[log]\nverbosity = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Runtime.HeapSlots != DefaultHeapSlots {
		t.Errorf("runtime heap_slots = %d, want %d", c.Runtime.HeapSlots, DefaultHeapSlots)
	}
	if c.Runtime.DebugAssertions {
		t.Error("runtime debug_assertions = true, want false")
	}
	if c.LogPath() != "" {
		t.Errorf("LogPath() = %q, want stderr", c.LogPath())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[runtime]\ngc_stress = true\n", "unknown key"},
		{"negative heap", "[runtime]\nheap_slots = -1\n", "must not be negative"},
		{"syntax", "[runtime\n", ""},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.content))
		if err == nil {
			t.Errorf("%s: Parse succeeded, want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %q, want it to contain %q", tt.name, err, tt.want)
		}
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[runtime]\nheap_slots = 64\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c.Runtime.HeapSlots != 64 {
		t.Errorf("heap_slots = %d, want 64", c.Runtime.HeapSlots)
	}
	abs, _ := filepath.Abs(root)
	if c.Dir != abs {
		t.Errorf("Dir = %q, want %q", c.Dir, abs)
	}
}

func TestFindAndLoadMissing(t *testing.T) {
	c, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c.Runtime.HeapSlots != DefaultHeapSlots || c.Dir != "" {
		t.Errorf("FindAndLoad without a file = %+v, want defaults", c)
	}
}

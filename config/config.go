// Package config handles garnet.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
)

// FileName is the configuration file looked up by Load and FindAndLoad.
const FileName = "garnet.toml"

// Config represents a garnet.toml file.
type Config struct {
	Runtime Runtime `toml:"runtime"`
	Log     Log     `toml:"log"`

	// Dir is the directory containing the garnet.toml file (set at load time).
	Dir string `toml:"-"`
}

// Runtime configures a new runtime.
type Runtime struct {
	// DebugAssertions enables liveness checks on every heap dereference,
	// as the garnet_debug build tag does.
	DebugAssertions bool `toml:"debug_assertions"`
	// HeapSlots is the initial heap arena capacity.
	HeapSlots int `toml:"heap_slots"`
}

// Log configures commonlog.
type Log struct {
	// Verbosity 0 logs warnings and errors only; each step adds a level.
	Verbosity int `toml:"verbosity"`
	// Path is a log file. Empty means stderr.
	Path string `toml:"path"`
}

// DefaultHeapSlots is used when heap_slots is unset.
const DefaultHeapSlots = 1024

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Runtime: Runtime{HeapSlots: DefaultHeapSlots}}
}

// Parse decodes garnet.toml content.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if c.Runtime.HeapSlots < 0 {
		return nil, fmt.Errorf("runtime.heap_slots must not be negative, got %d", c.Runtime.HeapSlots)
	}
	if c.Runtime.HeapSlots == 0 {
		c.Runtime.HeapSlots = DefaultHeapSlots
	}
	return c, nil
}

// Load parses a garnet.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a garnet.toml file, then
// loads it. It returns Default() if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// LogPath returns the log file path resolved against Dir, or "" for
// stderr.
func (c *Config) LogPath() string {
	if c.Log.Path == "" || filepath.IsAbs(c.Log.Path) || c.Dir == "" {
		return c.Log.Path
	}
	return filepath.Join(c.Dir, c.Log.Path)
}

// Apply configures the commonlog backend. A backend must be linked in,
// e.g. with a blank import of github.com/tliron/commonlog/simple.
func (c *Config) Apply() {
	var path *string
	if p := c.LogPath(); p != "" {
		path = &p
	}
	commonlog.Configure(c.Log.Verbosity, path)
}

package twidge

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// keymapFile is the on-disk shape of a keymap overlay:
//
//	[keys]
//	"[1~" = "home"
//	"[4~" = "end"
//
// Sequences use TOML string escapes for the raw bytes; values are token
// names as produced by the decoder.
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// KeymapPath returns the default overlay path, honoring XDG_CONFIG_HOME.
func KeymapPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "twidge.toml")
}

// LoadKeymap returns the default keymap with the user overlay applied.
// A missing file is not an error.
func LoadKeymap() (*Keymap, error) {
	return LoadKeymapFrom(KeymapPath())
}

// LoadKeymapFrom overlays bindings from a specific TOML file onto the
// default keymap. Overlay entries win over defaults.
func LoadKeymapFrom(path string) (*Keymap, error) {
	m := DefaultKeymap()
	if path == "" {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, err
	}
	var file keymapFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, err
	}
	for seq, name := range file.Keys {
		m.Bind([]byte(seq), name)
	}
	return m, nil
}

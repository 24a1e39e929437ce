package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the presentation defaults spec.md's §1.3 ambient
// configuration layer covers: never core algorithm behaviour, which stays
// a pure function of its explicit parameters (spec.md §5).
type config struct {
	// LayoutKind names the default NodeLayoutKind the layout command
	// uses when --kind is not given ("default", "hierdag",
	// "cluster", "controltop", "set", "worldbank", "similarity").
	LayoutKind string `toml:"layout_kind"`

	// LinkGroups is the default link-group relation-suffix order.
	LinkGroups []string `toml:"link_groups"`

	// ShowShadows is the layout command's default for including shadow
	// edges in the edge layout: false lays out without them, as
	// --no-shadows does.
	ShowShadows bool `toml:"show_shadows"`

	// LogLevel is the default logging level ("debug", "info", "warn",
	// "error"), overridden by --quiet/--verbose.
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		LayoutKind:  "default",
		ShowShadows: true,
		LogLevel:    "info",
	}
}

// loadConfig reads path (falling back to .biofabric.toml in the working
// directory when path is empty) with BurntSushi/toml, the same decoder
// matzehuels/stacktower uses for Cargo.toml/pyproject.toml. A missing
// default file is not an error; an explicitly named missing file is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = ".biofabric.toml"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, err
		}

		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

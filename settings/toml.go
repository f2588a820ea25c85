package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

type tomlFile struct {
	Settings
	Overrides map[string]map[string]any `toml:"overrides"`
}

type pyproject struct {
	Tool struct {
		TomlSort *tomlFile `toml:"tomlsort"`
	} `toml:"tool"`
}

func loadTOML(d []byte) (*Settings, error) {
	f := &tomlFile{}
	md, err := toml.Decode(string(d), f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettings, err)
	}
	return fromTOML(f, md, nil)
}

// loadPyproject returns nil settings if there is no [tool.tomlsort].
func loadPyproject(d []byte) (*Settings, error) {
	p := &pyproject{}
	md, err := toml.Decode(string(d), p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettings, err)
	}
	if p.Tool.TomlSort == nil {
		return nil, nil
	}
	return fromTOML(p.Tool.TomlSort, md, []string{"tool", "tomlsort"})
}

func fromTOML(f *tomlFile, md toml.MetaData, prefix []string) (*Settings, error) {
	var unknown []string
	for _, k := range md.Undecoded() {
		if len(k) > len(prefix) && slices.Equal([]string(k[:len(prefix)]), prefix) {
			unknown = append(unknown, k.String())
		}
	}
	if len(unknown) != 0 {
		return nil, fmt.Errorf("%w: unexpected keys %s", ErrSettings, strings.Join(unknown, ", "))
	}
	s := f.Settings
	if err := s.validate(); err != nil {
		return nil, err
	}
	// md.Keys is in document order, which decides between overrides
	depth := len(prefix) + 2
	var patterns []string
	for _, k := range md.Keys() {
		if len(k) == depth && slices.Equal([]string(k[:len(prefix)]), prefix) && k[len(prefix)] == "overrides" {
			patterns = append(patterns, k[depth-1])
		}
	}
	ovs, err := buildOverrides(patterns, f.Overrides)
	if err != nil {
		return nil, err
	}
	s.Overrides = ovs
	return &s, nil
}

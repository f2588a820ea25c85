package settings

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

type yamlFile struct {
	Settings  `yaml:",inline"`
	Overrides yaml.MapSlice `yaml:"overrides"`
}

func loadYAML(d []byte) (*Settings, error) {
	f := &yamlFile{}
	if err := yaml.UnmarshalWithOptions(d, f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettings, err)
	}
	s := f.Settings
	if err := s.validate(); err != nil {
		return nil, err
	}
	patterns := make([]string, 0, len(f.Overrides))
	fields := make(map[string]map[string]any, len(f.Overrides))
	for _, item := range f.Overrides {
		p, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: override pattern %v is not a string", ErrSettings, item.Key)
		}
		m, err := stringMap(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: override %q: %w", ErrSettings, p, err)
		}
		patterns = append(patterns, p)
		fields[p] = m
	}
	ovs, err := buildOverrides(patterns, fields)
	if err != nil {
		return nil, err
	}
	s.Overrides = ovs
	return &s, nil
}

func stringMap(v any) (map[string]any, error) {
	switch x := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return x, nil
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("field %v is not a string", k)
			}
			res[ks] = v
		}
		return res, nil
	case yaml.MapSlice:
		res := make(map[string]any, len(x))
		for _, item := range x {
			ks, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("field %v is not a string", item.Key)
			}
			res[ks] = item.Value
		}
		return res, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", v)
	}
}

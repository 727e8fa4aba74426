package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong.ConfigurationLoader for YAML files keyed by flag name.
// Global flags are top-level keys; flags of a subcommand may be nested
// under the command name:
//
//	tokenizer: words
//	exclude: [.png, .lock]
//	history:
//	  limit: 5
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML configuration: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(section, flag.Name); ok {
					return configValue(v), nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return configValue(v), nil
		}
		return nil, nil
	}
	return f, nil
}

// lookup finds a flag by its name, accepting underscores for dashes.
func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[name]; ok && v != nil {
		return v, true
	}
	if v, ok := values[strings.ReplaceAll(name, "-", "_")]; ok && v != nil {
		return v, true
	}
	return nil, false
}

// configValue renders a YAML value the way it would be written on the
// command line. Lists become comma-separated.
func configValue(v any) any {
	switch v := v.(type) {
	case []any:
		parts := make([]string, len(v))
		for i, el := range v {
			parts[i] = fmt.Sprint(el)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return nil
	default:
		return fmt.Sprint(v)
	}
}

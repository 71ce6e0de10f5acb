package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"golang.org/x/exp/maps"
)

var defaultConfigPaths = []string{
	"~/.config/loxlite/config.yaml",
	".loxlite.yaml",
}

// loadYAML is a [kong.ConfigurationLoader] for YAML config files.
//
// Keys are flag names; hyphens may be written as underscores:
//
//	log_level: debug
//	no_cache: true
//	define:
//	  answer: 42
//
// Command-line flags override config file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := make(config, len(values))
	for key, value := range values {
		cfg[key] = flagValue(value)
	}
	return cfg, nil
}

// flagValue converts decoded YAML into values kong mappers accept.
// Maps become "k=v;k=v" and sequences "a,b", the default kong separators.
func flagValue(value any) any {
	switch v := value.(type) {
	case nil, string, bool:
		return v
	case map[string]any:
		keys := maps.Keys(v)
		slices.Sort(keys)
		pairs := make([]string, len(keys))
		for i, key := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", key, flagValue(v[key]))
		}
		return strings.Join(pairs, ";")
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(flagValue(item))
		}
		return strings.Join(items, ",")
	default:
		return fmt.Sprint(v)
	}
}

// config implements [kong.Resolver] over a flat key/value map.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

var _ kong.ConfigurationLoader = loadYAML
var _ kong.Resolver = config{}

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// yamlConfigParser reads flag values from a YAML mapping
// of flag names to values.
//
//	mode: sections
//	wrapper: [allowFun, lib.allowFun]
//
// A list sets a flag once for each item.
// Keys are visited in sorted order.
func yamlConfigParser(r io.Reader, set func(name, value string) error) error {
	var cfg map[string]any
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file
		}
		return errtrace.Errorf("parse config: %w", err)
	}

	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values, err := configValues(cfg[name])
		if err != nil {
			return errtrace.Errorf("config %q: %w", name, err)
		}
		for _, v := range values {
			if err := set(name, v); err != nil {
				return errtrace.Errorf("config %q: %w", name, err)
			}
		}
	}
	return nil
}

func configValues(v any) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, err := configScalar(item)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			values = append(values, s)
		}
		return values, nil
	default:
		s, err := configScalar(v)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return []string{s}, nil
	}
}

func configScalar(v any) (string, error) {
	switch v.(type) {
	case map[string]any, []any:
		return "", errtrace.Errorf("expected a value or a list of values, got %T", v)
	default:
		return fmt.Sprint(v), nil
	}
}

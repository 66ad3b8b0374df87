// Package cases loads YAML files describing patterns and the strings they
// are expected to match or reject.
package cases

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Expected compile failures.
const (
	ErrorNone        = ""
	ErrorQuantifier  = "quantifier"
	ErrorUnsupported = "unsupported"
)

// File is a collection of cases.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Case is a single pattern, and what should happen when it is compiled and
// matched.
type Case struct {
	// Pattern is a pointer so that an empty pattern can be told apart from a
	// missing one.
	Pattern *string `yaml:"pattern"`

	// Match lists inputs the pattern must match.
	Match []string `yaml:"match,omitempty"`

	// Reject lists inputs the pattern must not match.
	Reject []string `yaml:"reject,omitempty"`

	// Error is the kind of compile error expected, if any.
	Error string `yaml:"error,omitempty"`
}

// Load reads and validates a case file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load cases %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a case file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cases: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every case has a pattern and a known error kind, and
// that cases expected to fail to compile list no inputs.
func (f *File) Validate() error {
	var errs []error
	for i, c := range f.Cases {
		if c.Pattern == nil {
			errs = append(errs, fmt.Errorf("case %d: missing pattern", i))
			continue
		}
		switch c.Error {
		case ErrorNone:
		case ErrorQuantifier, ErrorUnsupported:
			if len(c.Match) > 0 || len(c.Reject) > 0 {
				errs = append(errs, fmt.Errorf("case %d (%q): inputs given for a pattern expected not to compile", i, *c.Pattern))
			}
		default:
			errs = append(errs, fmt.Errorf("case %d (%q): unknown error kind %q", i, *c.Pattern, c.Error))
		}
	}
	return errors.Join(errs...)
}

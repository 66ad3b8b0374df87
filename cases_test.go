package zzre_test

import (
	"errors"
	"testing"

	"github.com/DrJosh9000/zzre"
	"github.com/DrJosh9000/zzre/internal/cases"
)

var errorKinds = map[string]error{
	cases.ErrorQuantifier:  zzre.ErrQuantifierPlacement,
	cases.ErrorUnsupported: zzre.ErrUnsupportedCharacter,
}

func TestCaseFile(t *testing.T) {
	f, err := cases.Load("testdata/cases.yaml")
	if err != nil {
		t.Fatalf("cases.Load() error = %v", err)
	}

	for _, c := range f.Cases {
		pattern := *c.Pattern
		g, err := zzre.Compile(pattern)
		if c.Error != cases.ErrorNone {
			if want := errorKinds[c.Error]; !errors.Is(err, want) {
				t.Errorf("Compile(%q) error = %v, want %v", pattern, err, want)
			}
			continue
		}
		if err != nil {
			t.Errorf("Compile(%q) error = %v", pattern, err)
			continue
		}
		for _, in := range c.Match {
			if !g.Match(in) {
				t.Errorf("Compile(%q).Match(%q) = false, want true", pattern, in)
			}
		}
		for _, in := range c.Reject {
			if g.Match(in) {
				t.Errorf("Compile(%q).Match(%q) = true, want false", pattern, in)
			}
		}
	}
}

package cases

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func TestParse(t *testing.T) {
	input := `
cases:
  - pattern: ""
    match: [""]
  - pattern: "a*b"
    match: ["b", "aab"]
    reject: ["aaa"]
  - pattern: "*a"
    error: quantifier
`
	got, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := &File{Cases: []Case{
		{Pattern: ptr(""), Match: []string{""}},
		{Pattern: ptr("a*b"), Match: []string{"b", "aab"}, Reject: []string{"aaa"}},
		{Pattern: ptr("*a"), Error: ErrorQuantifier},
	}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Parse() diff (-got +want):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input, wantErr string
	}{
		{"cases: [", "parse cases"},
		{"cases:\n  - match: [a]\n", "case 0: missing pattern"},
		{"cases:\n  - pattern: a\n    error: nope\n", `unknown error kind "nope"`},
		{"cases:\n  - pattern: '*'\n    error: quantifier\n    match: [a]\n", "inputs given"},
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.input))
		if err == nil {
			t.Errorf("Parse(%q) error = nil, want error containing %q", test.input, test.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("Parse(%q) error = %v, want error containing %q", test.input, err, test.wantErr)
		}
	}
}

func TestLoad(t *testing.T) {
	f, err := Load("testdata/example.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := len(f.Cases), 2; got != want {
		t.Errorf("len(Load().Cases) = %d, want %d", got, want)
	}

	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Errorf("Load(missing) error = nil, want error")
	}
}

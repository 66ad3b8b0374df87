package zzre

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteDot(t *testing.T) {
	g := MustCompile("a*")
	var sb strings.Builder
	if err := g.WriteDot(&sb, map[int]struct{}{3: {}}); err != nil {
		t.Fatalf("WriteDot() = %v", err)
	}
	want := `digraph {
	rankdir=LR;
	node_0 [label="start", shape=point, style=filled, fillcolor=white];
	node_0 -> node_3 [label="0"];
	node_3 [label="'a'*", shape=circle, style=filled, fillcolor=green];
	node_3 -> node_3 [label="0"];
	node_3 -> node_1 [label="1"];
	node_1 [label="end", shape=doublecircle, style=filled, fillcolor=white];
}
`
	if diff := cmp.Diff(sb.String(), want); diff != "" {
		t.Errorf("WriteDot output diff (-got +want):\n%s", diff)
	}
}

func TestWriteDotSmoke(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"a*4.+hi",
		`"*\+`,
	}
	for _, pattern := range tests {
		g, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", pattern, err)
		}
		_, visited := g.Trace("aaa4uhi")
		if err := g.WriteDot(io.Discard, visited); err != nil {
			t.Errorf("(%q).WriteDot(io.Discard) = %v", pattern, err)
		}
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteDotError(t *testing.T) {
	want := io.ErrShortWrite
	if err := MustCompile("ab").WriteDot(errWriter{want}, nil); err != want {
		t.Errorf("WriteDot(errWriter) = %v, want %v", err, want)
	}
}

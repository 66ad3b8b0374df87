// Package zzre compiles small regular expressions into state graphs, and
// matches whole strings against them.
//
// The pattern grammar is deliberately tiny: ASCII literals, the wildcard .
// (any byte), and the postfix quantifiers * (zero or more) and + (one or
// more), which apply to the single preceding atom.
package zzre

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Compile converts a pattern into a state graph.
func Compile(pattern string, opts ...CompileOption) (*Graph, error) {
	cfg := defaultCompileConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}

	g := &Graph{
		pattern: pattern,
		nodes:   make([]node, 2, len(pattern)+2),
	}
	g.nodes[startID] = node{Kind: Start}
	g.nodes[terminationID] = node{Kind: Termination}

	sc := scanner{pattern: pattern, cfg: &cfg}
	prev := startID
	for {
		t, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		h := g.add(t.atom())
		if t.quant != 0 {
			kind := Star
			if t.quant == '+' {
				kind = Plus
			}
			// Quantified nodes start out looping back to themselves; the
			// continuation is pushed in front of the loop below.
			w := g.add(node{Kind: kind, Inner: h})
			g.nodes[w].Out = []int{w}
			h = w
		}
		logf(cfg.traceLogger, "node %d: %s at offset %d\n", h, g.label(h), t.offset)

		// The new node becomes the primary continuation of prev.
		g.nodes[prev].Out = append([]int{h}, g.nodes[prev].Out...)
		prev = h
	}

	g.nodes[prev].Out = append(g.nodes[prev].Out, terminationID)
	logf(cfg.traceLogger, "compiled %q into %d nodes\n", pattern, len(g.nodes))
	return g, nil
}

// MustCompile calls Compile, and panics if unable to compile the pattern.
func MustCompile(pattern string, opts ...CompileOption) *Graph {
	g, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// term is one atom of a pattern together with its quantifier, if any.
type term struct {
	offset int
	symbol byte
	dot    bool
	quant  byte // '*', '+', or 0
}

func (t term) atom() node {
	if t.dot {
		return node{Kind: Dot}
	}
	return node{Kind: Literal, Symbol: t.symbol}
}

// scanner walks a pattern left to right, one term at a time, looking ahead
// by one byte for a quantifier.
type scanner struct {
	pattern string
	pos     int
	cfg     *compileConfig
}

// next returns the next term, or ok == false at the end of the pattern.
func (s *scanner) next() (t term, ok bool, err error) {
	if s.pos >= len(s.pattern) {
		return term{}, false, nil
	}
	i, c := s.pos, s.pattern[s.pos]
	if c >= utf8.RuneSelf {
		r, _ := utf8.DecodeRuneInString(s.pattern[i:])
		return term{}, false, s.errorf(i, r, ErrUnsupportedCharacter)
	}
	if s.cfg.quantifier(c) {
		// A quantifier following an atom is consumed by the lookahead below,
		// so this one is either first or follows another quantifier.
		return term{}, false, s.errorf(i, rune(c), ErrQuantifierPlacement)
	}

	t = term{
		offset: i,
		symbol: c,
		dot:    c == '.' && s.cfg.allowDot,
	}
	s.pos++
	if s.pos < len(s.pattern) && s.cfg.quantifier(s.pattern[s.pos]) {
		t.quant = s.pattern[s.pos]
		s.pos++
	}
	return t, true, nil
}

func (s *scanner) errorf(offset int, r rune, err error) error {
	return &SyntaxError{
		Pattern: s.pattern,
		Offset:  offset,
		Char:    r,
		Err:     err,
	}
}

// logf writes to the trace log, if there is one.
func logf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, format, args...)
}

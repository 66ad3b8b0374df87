package zzre

import "slices"

// Match reports whether the whole of input matches the pattern.
func (g *Graph) Match(input string, opts ...MatchOption) bool {
	var cfg matchConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	return g.search(input, &cfg, nil)
}

// Matches reports whether the whole of input matches the compiled graph.
func Matches(g *Graph, input string) bool { return g.Match(input) }

// Trace is like Match, but also returns the handles of every node the search
// visited. The set is suitable for highlighting with WriteDot.
func (g *Graph) Trace(input string, opts ...MatchOption) (bool, map[int]struct{}) {
	var cfg matchConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	visited := make(map[int]struct{})
	ok := g.search(input, &cfg, func(h int) { visited[h] = struct{}{} })
	return ok, visited
}

// position is a node handle paired with an offset into the input.
type position struct {
	node, pos int
}

// search explores (node, position) pairs breadth-first. Each pair is queued
// at most once, which bounds the work by the number of nodes times
// len(input)+1.
func (g *Graph) search(input string, cfg *matchConfig, visit func(int)) bool {
	seen := make(map[position]struct{})
	var q []position
	push := func(n, pos int) {
		p := position{n, pos}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		q = append(q, p)
	}
	push(startID, 0)

	for len(q) > 0 {
		p := q[0]
		q = q[1:]
		if visit != nil {
			visit(p.node)
		}
		logf(cfg.traceLogger, "visit node %d (%s) at position %d\n", p.node, g.label(p.node), p.pos)

		out := g.nodes[p.node].Out

		if p.pos == len(input) {
			if p.node == terminationID || slices.Contains(out, terminationID) {
				logf(cfg.traceLogger, "accepted %q\n", input)
				return true
			}
			// Entering a star consumes nothing, so it can still lead to
			// Termination.
			if len(out) > 0 && g.entersStar(p.node, out[0]) {
				push(out[0], p.pos)
			}
			continue
		}

		if len(out) == 0 {
			continue
		}
		c := input[p.pos]
		switch next := out[0]; {
		case g.entersStar(p.node, next):
			push(next, p.pos)
		case g.accepts(next, c):
			push(next, p.pos+1)
		}
		if len(out) > 1 && g.accepts(out[1], c) {
			push(out[1], p.pos+1)
		}
	}

	logf(cfg.traceLogger, "rejected %q\n", input)
	return false
}

// entersStar reports whether the edge from -> to moves into a Star without
// consuming input. A trailing Star's edge to itself is a repeat instead.
func (g *Graph) entersStar(from, to int) bool {
	return to != from && g.nodes[to].Kind == Star
}

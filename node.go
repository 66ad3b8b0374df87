package zzre

import "fmt"

// Kind classifies the nodes of a state graph.
type Kind uint8

// Node kinds.
const (
	// Start is the entry sentinel. It has exactly one out-edge.
	Start Kind = iota

	// Termination is the accepting sink. It has no out-edges.
	Termination

	// Dot matches any single byte.
	Dot

	// Literal matches exactly one byte.
	Literal

	// Star matches zero or more of its inner atom.
	Star

	// Plus matches one or more of its inner atom.
	Plus
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case Termination:
		return "Termination"
	case Dot:
		return "Dot"
	case Literal:
		return "Literal"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Handles of the two nodes every graph has.
const (
	startID       = 0
	terminationID = 1
)

// node is a state of the graph. Nodes refer to one another by their index
// (handle) in Graph.nodes, so a Star can loop back to itself.
type node struct {
	Kind Kind

	// Symbol is the byte matched by a Literal.
	Symbol byte

	// Inner is the handle of the atom wrapped by a Star or Plus.
	Inner int

	// Out holds at most two successors. Out[0] is the primary continuation;
	// Out[1], on Star and Plus nodes, is the repeat edge.
	Out []int
}

// Graph is a compiled pattern. It is immutable once built, and safe to share
// between goroutines.
type Graph struct {
	pattern string
	nodes   []node
}

// Pattern returns the source pattern the graph was compiled from.
func (g *Graph) Pattern() string { return g.pattern }

// Len returns the number of nodes in the graph, including the Start and
// Termination nodes and the atoms wrapped by quantifiers.
func (g *Graph) Len() int { return len(g.nodes) }

// Kind returns the kind of node h.
func (g *Graph) Kind(h int) Kind { return g.nodes[h].Kind }

// Out returns a copy of the out-edges of node h, primary edge first.
func (g *Graph) Out(h int) []int {
	return append([]int(nil), g.nodes[h].Out...)
}

// add appends a node to the arena and returns its handle.
func (g *Graph) add(n node) int {
	g.nodes = append(g.nodes, n)
	return len(g.nodes) - 1
}

// accepts reports whether node h consumes the byte c.
func (g *Graph) accepts(h int, c byte) bool {
	n := &g.nodes[h]
	switch n.Kind {
	case Start, Termination:
		return false
	case Dot:
		return true
	case Literal:
		return n.Symbol == c
	case Star, Plus:
		return g.accepts(n.Inner, c)
	default:
		return false
	}
}

// label is a short description of node h, used in traces and dot output.
func (g *Graph) label(h int) string {
	n := &g.nodes[h]
	switch n.Kind {
	case Start:
		return "start"
	case Termination:
		return "end"
	case Dot:
		return "."
	case Literal:
		return fmt.Sprintf("%q", n.Symbol)
	case Star:
		return g.label(n.Inner) + "*"
	case Plus:
		return g.label(n.Inner) + "+"
	default:
		return n.Kind.String()
	}
}

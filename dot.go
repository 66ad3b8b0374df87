package zzre

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot writes a digraph representing the state graph to the writer
// (in GraphViz syntax). Nodes in hilite are filled in.
func (g *Graph) WriteDot(w io.Writer, hilite map[int]struct{}) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}

	seen := make(map[int]bool)
	q := []int{startID}
	for len(q) > 0 {
		h := q[0]
		q = q[1:]

		if seen[h] {
			continue
		}
		seen[h] = true

		shape := "circle"
		switch g.nodes[h].Kind {
		case Start:
			shape = "point"
		case Termination:
			shape = "doublecircle"
		}
		fill := "white"
		if _, ok := hilite[h]; ok {
			fill = "green"
		}
		label := strings.ReplaceAll(g.label(h), `"`, `\"`)
		if _, err := fmt.Fprintf(w, "\tnode_%d [label=\"%s\", shape=%s, style=filled, fillcolor=%s];\n", h, label, shape, fill); err != nil {
			return err
		}
		for i, next := range g.nodes[h].Out {
			if _, err := fmt.Fprintf(w, "\tnode_%d -> node_%d [label=\"%d\"];\n", h, next, i); err != nil {
				return err
			}
			if seen[next] {
				continue
			}
			q = append(q, next)
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

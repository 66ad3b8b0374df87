// The zzdot command prints the state graph of a pattern in GraphViz syntax.
// If an input is given, nodes visited while matching it are highlighted.
//
// Example:
//
//	$ zzdot 'a*4.+hi' 4uhi | dot -Tsvg > graph.svg
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzre"
)

func main() {
	if len(os.Args) != 2 && len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern [input]\n", os.Args[0])
		os.Exit(1)
	}

	g, err := zzre.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	var hilite map[int]struct{}
	if len(os.Args) == 3 {
		_, hilite = g.Trace(os.Args[2])
	}

	if err := g.WriteDot(os.Stdout, hilite); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}

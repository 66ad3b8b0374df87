// The zzre command reports whether strings match a pattern.
//
// Inputs come from the remaining arguments, or one per line from stdin if
// there are none. With -cases, a YAML case file is checked instead.
//
// Example:
//
//	$ zzre 'a*4.+hi' aaaaaa4uhi 4uhi meow
//	aaaaaa4uhi	true
//	4uhi	true
//	meow	false
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/DrJosh9000/zzre"
	"github.com/DrJosh9000/zzre/internal/cases"
)

var (
	casesPath = flag.String("cases", "", "YAML file of cases to check instead of matching inputs")
	trace     = flag.Bool("trace", false, "write trace logs to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-trace] pattern [input...]\n       %s [-trace] -cases file.yaml\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var traceLog io.Writer
	if *trace {
		traceLog = os.Stderr
	}

	if *casesPath != "" {
		if flag.NArg() != 0 {
			flag.Usage()
			os.Exit(1)
		}
		f, err := cases.Load(*casesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't load cases: %v\n", err)
			os.Exit(1)
		}
		if failures := check(os.Stdout, f, traceLog); failures > 0 {
			fmt.Fprintf(os.Stderr, "%d case(s) failed\n", failures)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	pattern := flag.Arg(0)
	g, err := zzre.Compile(pattern, zzre.WithCompileTraceLogs(traceLog))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", pattern, err)
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		for _, in := range flag.Args()[1:] {
			fmt.Printf("%s\t%t\n", in, g.Match(in, zzre.WithTraceLogs(traceLog)))
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		in := sc.Text()
		fmt.Printf("%s\t%t\n", in, g.Match(in, zzre.WithTraceLogs(traceLog)))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't read stdin: %v\n", err)
		os.Exit(1)
	}
}

var errorKinds = map[string]error{
	cases.ErrorQuantifier:  zzre.ErrQuantifierPlacement,
	cases.ErrorUnsupported: zzre.ErrUnsupportedCharacter,
}

// check runs every case in f, reporting failures to w, and returns the number
// of failures.
func check(w io.Writer, f *cases.File, traceLog io.Writer) int {
	failures := 0
	for _, c := range f.Cases {
		pattern := *c.Pattern
		g, err := zzre.Compile(pattern, zzre.WithCompileTraceLogs(traceLog))
		if c.Error != cases.ErrorNone {
			if want := errorKinds[c.Error]; !errors.Is(err, want) {
				fmt.Fprintf(w, "FAIL\t%q: compile error = %v, want %v\n", pattern, err, want)
				failures++
			}
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "FAIL\t%q: %v\n", pattern, err)
			failures++
			continue
		}
		for _, in := range c.Match {
			if !g.Match(in, zzre.WithTraceLogs(traceLog)) {
				fmt.Fprintf(w, "FAIL\t%q: should match %q\n", pattern, in)
				failures++
			}
		}
		for _, in := range c.Reject {
			if g.Match(in, zzre.WithTraceLogs(traceLog)) {
				fmt.Fprintf(w, "FAIL\t%q: should not match %q\n", pattern, in)
				failures++
			}
		}
	}
	return failures
}

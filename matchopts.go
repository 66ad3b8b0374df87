package zzre

import "io"

// MatchOption functions optionally alter how Match operates.
type MatchOption = func(*matchConfig)

type matchConfig struct {
	traceLogger io.Writer
}

// WithTraceLogs logs each (node, position) pair visited by the search to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) MatchOption {
	return func(cfg *matchConfig) {
		cfg.traceLogger = out
	}
}

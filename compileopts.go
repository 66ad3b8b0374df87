package zzre

import "io"

var defaultCompileConfig = compileConfig{
	allowDot:  true,
	allowStar: true,
	allowPlus: true,
}

type compileConfig struct {
	allowDot    bool
	allowStar   bool
	allowPlus   bool
	traceLogger io.Writer
}

// CompileOption functions optionally alter how patterns are compiled.
type CompileOption = func(*compileConfig)

// AllowDot changes how . is compiled. If disabled, . is treated as a literal.
// Enabled by default.
func AllowDot(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowDot = enable
	}
}

// AllowStar changes how * is compiled. If disabled, * is treated as a literal.
// Enabled by default.
func AllowStar(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowStar = enable
	}
}

// AllowPlus changes how + is compiled. If disabled, + is treated as a literal.
// Enabled by default.
func AllowPlus(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowPlus = enable
	}
}

// WithCompileTraceLogs logs each node to the writer as it is added to the
// graph. Disabled by default.
func WithCompileTraceLogs(out io.Writer) CompileOption {
	return func(o *compileConfig) {
		o.traceLogger = out
	}
}

// quantifier reports whether c is an enabled quantifier.
func (o *compileConfig) quantifier(c byte) bool {
	switch c {
	case '*':
		return o.allowStar
	case '+':
		return o.allowPlus
	}
	return false
}

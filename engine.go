package svgenius

import "log/slog"

// Engine runs the path transforms with a fixed set of options. An Engine
// holds no mutable state and may be shared between goroutines.
type Engine struct {
	opts Options
	log  *slog.Logger
}

// New returns an engine using opts, with unset fields defaulted.
func New(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults(), log: slog.Default()}
}

// WithLogger returns a copy of the engine that logs to l.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	c := *e
	c.log = l
	return &c
}

// Options returns the options in effect.
func (e *Engine) Options() Options {
	return e.opts
}

func (e *Engine) format(p Path) string {
	return p.Format(e.opts.Precision)
}

var std = New(DefaultOptions())

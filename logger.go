// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"io"
	"log/slog"
	"os"

	"github.com/gogama/geomem/envelope"
)

// Logger wraps slog.Logger with datasource-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to the given handler. If handler
// is nil, a text handler writing to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs
// to w at the given minimum level.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithDatasource adds the datasource name field.
func (l *Logger) WithDatasource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("datasource", name),
	}
}

func (l *Logger) logPointQuery(pt envelope.Coord, tol float64, box envelope.Box) {
	l.Debug("point query",
		"x", pt.X,
		"y", pt.Y,
		"tolerance", tol,
		"box", box.String(),
	)
}

func (l *Logger) logExtent(size int, extent envelope.Box) {
	l.Debug("extent computed",
		"features", size,
		"extent", extent.String(),
	)
}

func (l *Logger) logClear(size int) {
	l.Debug("cleared",
		"features", size,
	)
}

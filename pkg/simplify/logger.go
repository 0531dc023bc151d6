package simplify

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the package. By default nothing is
// logged. Passing nil restores the silent default. It is safe to call while
// simplifications are running on other goroutines.
//
// Every simplification, including lines of fewer than two points, writes one record at [slog.LevelDebug] with the input
// size, the retained size and the tolerance.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently in use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func logSelection(points, retained int, tolerance float64) {
	l := loggerPtr.Load()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "simplified polyline",
		slog.Int("points", points),
		slog.Int("retained", retained),
		slog.Float64("tolerance", tolerance))
}

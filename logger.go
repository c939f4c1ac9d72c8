package shade

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so callers skip
// building attributes when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger shared by the palette and swatch packages
// and the shade command. Nothing is logged until SetLogger is called;
// passing nil restores that silent default. It is safe to call while
// other goroutines are logging.
//
// Generate, GenerateRGB and the conversion functions never log, not even
// on error: failures are reported only through their returned errors.
//
// Records emitted:
//
//	level  message            source      attributes
//	DEBUG  "palette encoded"  palette     format, base, shades
//	DEBUG  "swatch render"    swatch      shades, columns, rows, width, height
//	INFO   "palette written"  cmd/shade   path
//	INFO   "swatch written"   cmd/shade   path, base, shades
//
// The shade command builds a text handler on stderr at the level given by
// log_level in shade.yaml, SHADE_LOG_LEVEL or --log-level (warn by
// default), so a plain run prints nothing.
//
//	shade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

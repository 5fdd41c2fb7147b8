package sketch

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// SetLogger configures the logger for sketch and its sub-packages.
// By default, sketch produces no log output.
//
// sketch shares gg's logger, so engine diagnostics (CPU fallback,
// accelerator selection) end up in the same place. Pass nil to restore
// the silent default for both.
//
// Log levels used by sketch:
//   - [slog.LevelDebug]: every Add/Draw with the shape kind and position
//   - [slog.LevelWarn]: variant setters called on the wrong kind, scene
//     reloads that failed in watch mode
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// Logger returns the current logger used by sketch.
// Sub-packages (record, scene) call this to share one configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return gg.Logger()
}

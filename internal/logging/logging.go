package logging

import (
	"fmt"
	"io"

	"github.com/op/go-logging"
)

const module = "raycaster"

// Log is the process-wide logger. It writes nowhere useful until Init runs.
var Log = logging.MustGetLogger(module)

var colorFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`,
)

var plainFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfunc} %{level:.4s} %{message}`,
)

// Init points the logger at w and filters below level ("DEBUG", "INFO",
// "WARNING", ...). Colour escapes are only emitted when color is set, so
// log files stay readable.
func Init(w io.Writer, level string, color bool) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	format := plainFormat
	if color {
		format = colorFormat
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, module)
	logging.SetBackend(leveled)
	return nil
}

// Discard silences all logging; hosts call it when no log file is set and
// the terminal belongs to the renderer.
func Discard() {
	_ = Init(io.Discard, "CRITICAL", false)
}

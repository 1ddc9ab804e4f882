// Package build provides the log plumbing shared by every subsystem:
// a stdout+rotating-file io.Writer and a constructor for per-subsystem
// btclog.Logger instances, the same split daemon/log.go draws on top of
// its own copy of this package.
package build

import (
	"io"
	"os"
)

// LogWriter is an io.Writer that duplicates its output both to standard
// output and to the log rotator's pipe, once one has been attached via
// RotatorPipe. Writes before RotatorPipe is set go to stdout only, so
// early startup logging (before the log file path is known from config)
// is never silently dropped.
type LogWriter struct {
	RotatorPipe *io.PipeWriter
}

// Write implements io.Writer.
func (w *LogWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if w.RotatorPipe != nil {
		return w.RotatorPipe.Write(p)
	}
	return len(p), nil
}

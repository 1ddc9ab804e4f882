package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
)

// InitLogRotator creates the rotating log file at logFile (rolling once
// MaxLogFileSize KB is reached, keeping MaxLogFiles old copies) and wires
// it into w, so every Write also reaches the file. It must be called once,
// early in process startup, before any subsystem logger is used.
func InitLogRotator(w *LogWriter, logFile string, maxLogFileSize, maxLogFiles int) (*rotator.Rotator, error) {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r, err := rotator.New(logFile, int64(maxLogFileSize*1024), false, maxLogFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to create file rotator: %w", err)
	}

	pr, pw := io.Pipe()
	go r.Run(pr)

	w.RotatorPipe = pw
	return r, nil
}

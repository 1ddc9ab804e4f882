package build

import (
	"github.com/btcsuite/btclog"
)

// LogWriterSingleton is the process-wide writer every subsystem logger
// is built on top of, mirroring daemon/log.go's package-level logWriter.
var LogWriterSingleton = &LogWriter{}

// Backend is the process-wide btclog backend all subsystem loggers are
// created from. Loggers can be created from it at any time; lines
// written before InitLogRotator has attached a file target go to stdout
// only.
var Backend = btclog.NewBackend(LogWriterSingleton)

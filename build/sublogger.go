package build

import (
	"github.com/btcsuite/btclog"
)

// NewSubLogger creates a btclog.Logger tagged with subsystem, sourced
// from loggerFn (typically a btclog.Backend's Logger method value), and
// defaults its level to Info so a subsystem logs usefully before config
// has had a chance to call SetLogLevels.
func NewSubLogger(subsystem string, loggerFn func(string) btclog.Logger) btclog.Logger {
	logger := loggerFn(subsystem)
	logger.SetLevel(btclog.LevelInfo)
	return logger
}

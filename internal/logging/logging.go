// Package logging holds the process-wide zap logger. Until Init is called
// the logger is a nop, so library code and tests can log unconditionally.
package logging

import (
	"go.uber.org/zap"
)

var Logger = zap.NewNop().Sugar()

// Init replaces the nop logger with a real one. Debug mode uses the
// development config at debug level; otherwise warnings and above are
// emitted in console encoding.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger.Sugar()
	return nil
}

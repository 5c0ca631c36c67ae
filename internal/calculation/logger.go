package calculation

import "log"

// Logger is the minimal structured-ish logging seam the engine calls
// through, mirrored from cmd/rpgo's simpleCLILogger so the engine never
// talks to the standard log package directly.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything; it is the engine's default so callers
// that never set a logger pay no cost.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// StdLogger wraps the standard library logger, the way cmd/rpgo's
// simpleCLILogger wraps log.Printf for the CLI driver.
type StdLogger struct{}

func (StdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (StdLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything; handy for tests and library callers
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}

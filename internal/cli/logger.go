package cli

import (
	"io"
	"log"
)

// StderrLogger implements conversion.Logger on top of the standard log
// package. It is installed by --verbose.
type StderrLogger struct {
	l *log.Logger
}

// NewStderrLogger creates a logger writing to w
func NewStderrLogger(w io.Writer) *StderrLogger {
	return &StderrLogger{l: log.New(w, "numwords: ", 0)}
}

func (s *StderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s *StderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s *StderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s *StderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }

// Package logging is a small leveled logger for diagnostics on stderr, plus the progress lines
// the command prints on stdout.
//
// The level defaults to LevelWarn. The command has no flag to change it; SetLevel is for
// tests and for callers embedding the analysis and chart packages.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

var level atomic.Int32

func init() { level.Store(int32(LevelWarn)) }

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// progressOut receives the human-readable run progress (file loads, summary lines).
var progressOut io.Writer = os.Stdout

// SetLevel sets the minimum level that is written and returns the previous one.
func SetLevel(l LogLevel) LogLevel {
	return LogLevel(level.Swap(int32(l)))
}

func logf(l LogLevel, format string, args ...interface{}) {
	if LogLevel(level.Load()) > l {
		return
	}
	// A message without args is printed as is so literal % signs survive.
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	baseLogger.Printf("[%s] %s", l, msg)
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// Progressf prints one progress line to stdout regardless of the log level.
func Progressf(format string, a ...interface{}) {
	if len(a) == 0 {
		fmt.Fprintln(progressOut, format)
		return
	}
	fmt.Fprintf(progressOut, format+"\n", a...)
}

// SetProgressOutput redirects progress lines and returns the previous writer.
func SetProgressOutput(w io.Writer) io.Writer {
	prev := progressOut
	progressOut = w
	return prev
}

// TimeTrack logs the duration of a phase at debug level. Use as defer TimeTrack(time.Now(), "label").
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}

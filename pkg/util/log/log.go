package log

import (
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
)

// Logger is the process logger used by the command line tools. Libraries
// take a logger through their options instead.
var Logger = kitlog.NewNopLogger()

// InitLogger sets Logger to write to stderr and returns it.
func InitLogger(logFormat string, logLevel dslog.Level) kitlog.Logger {
	return InitLoggerWithWriter(os.Stderr, logFormat, logLevel)
}

// InitLoggerWithWriter is InitLogger with an explicit destination.
func InitLoggerWithWriter(w io.Writer, logFormat string, logLevel dslog.Level) kitlog.Logger {
	writer := kitlog.NewSyncWriter(w)
	logger := dslog.NewGoKitWithWriter(logFormat, writer)

	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.Caller(5))

	// Must put the level filter last for efficiency.
	logger = level.NewFilter(logger, logLevel.Option)

	Logger = logger
	return logger
}

// ParseLevel converts a level name such as "debug" into a dskit level.
func ParseLevel(s string) (dslog.Level, error) {
	var l dslog.Level
	err := l.Set(s)
	return l, err
}

package authclient

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus logger to the package Logger interface, for
// hosts that already run structured logging. Arguments follow the
// key-then-value convention the rest of the package uses.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger wraps log; a nil log uses the logrus standard logger.
func NewLogrusLogger(log *logrus.Logger) *LogrusLogger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogrusLogger{log: log}
}

// Debug logs at debug level.
func (l *LogrusLogger) Debug(format string, args ...any) {
	l.entry(args).Debug(format)
}

// Info logs at info level.
func (l *LogrusLogger) Info(format string, args ...any) {
	l.entry(args).Info(format)
}

// Warn logs at warn level.
func (l *LogrusLogger) Warn(format string, args ...any) {
	l.entry(args).Warn(format)
}

// Error logs at error level.
func (l *LogrusLogger) Error(format string, args ...any) {
	l.entry(args).Error(format)
}

func (l *LogrusLogger) entry(args []any) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		fields[key] = args[i+1]
	}
	return l.log.WithFields(fields)
}

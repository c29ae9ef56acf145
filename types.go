package authclient

import (
	"fmt"
	"time"
)

// Logger is the minimal logging surface the package depends on. The default
// implementation prints to stdout; NewLogrusLogger adapts a logrus logger.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Navigator is the seam to the host application's navigation layer. The
// gateway and guards only ever ask it to move to a route; they never inspect
// where the application currently is.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function into a Navigator.
type NavigatorFunc func(path string)

// Navigate satisfies the Navigator interface.
func (f NavigatorFunc) Navigate(path string) {
	if f != nil {
		f(path)
	}
}

// Notifier surfaces user-visible denial notices, e.g. when a non-admin hits
// an admin-only route. Implementations typically show a toast or dialog.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(message string)

// Notify satisfies the Notifier interface.
func (f NotifierFunc) Notify(message string) {
	if f != nil {
		f(message)
	}
}

// Config holds client session options
type Config interface {
	GetBaseURL() string
	GetLoginRoute() string
	GetLandingRoute() string
	GetAuthScheme() string
	GetTokenCheckInterval() time.Duration
	GetStoragePath() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTHCLIENT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}

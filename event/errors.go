package event

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// HandlerError is the failure of a single handler during a dispatch,
// either an error returned by the handler or a recovered panic.
type HandlerError struct {
	// Channel is the name of the dispatching channel.
	Channel string
	// Index is the position of the subscription in the dispatch snapshot.
	Index int
	// Context is the context object of the subscription.
	Context any
	// Err is the error returned by the handler (nil for panics).
	Err error
	// Recovered is the panic value (nil for returned errors).
	Recovered any
	// StackTrace is captured for panics only.
	StackTrace string
}

func (e *HandlerError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in handler #%d of channel %q: %v", e.Index, e.Channel, e.Recovered)
	}
	return fmt.Sprintf("handler #%d of channel %q failed: %v", e.Index, e.Channel, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// IsPanic is true if the handler panicked.
func (e *HandlerError) IsPanic() bool {
	return e.Recovered != nil
}

// Reporter receives the failures of handlers during dispatch.
type Reporter interface {
	ReportHandlerError(err *HandlerError)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err *HandlerError)

// ReportHandlerError calls f(err).
func (f ReporterFunc) ReportHandlerError(err *HandlerError) {
	f(err)
}

// TraceReporter reports handler errors to the 'xpui.event' tracer.
type TraceReporter struct{}

// ReportHandlerError traces err with level Error.
func (TraceReporter) ReportHandlerError(err *HandlerError) {
	t := tracer().P("channel", err.Channel)
	t.Errorf("%v", err)
	if err.StackTrace != "" {
		t.Debugf("stack trace:\n%s", err.StackTrace)
	}
}

var (
	defaultReporter Reporter = TraceReporter{}
	reporterMu      sync.RWMutex
)

// SetDefaultReporter sets the reporter for channels which have been created
// without option WithReporter. Pass nil to restore the TraceReporter.
func SetDefaultReporter(r Reporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	if r == nil {
		r = TraceReporter{}
	}
	defaultReporter = r
}

func getDefaultReporter() Reporter {
	reporterMu.RLock()
	defer reporterMu.RUnlock()
	return defaultReporter
}

// captureStack returns the current call stack, skipping the frames of the
// deferred recover.
func captureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(4, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}

package driven

// ProgressSink receives human-readable progress messages during an
// ingestion run: one per page fetched, one per record skipped, created
// or failed, and a final summary line. Callers needing machine-readable
// results consume the RunSummary instead.
type ProgressSink interface {
	// Progress reports one formatted progress message.
	Progress(format string, args ...any)
}

// ProgressFunc adapts a function to the ProgressSink interface.
type ProgressFunc func(format string, args ...any)

// Progress implements ProgressSink.
func (f ProgressFunc) Progress(format string, args ...any) {
	f(format, args...)
}

// NopProgress discards all progress messages.
var NopProgress ProgressSink = ProgressFunc(func(string, ...any) {})

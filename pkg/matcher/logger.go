package matcher

// DebugLogger receives diagnostic messages from the orchestrator. The
// library stays silent by default; callers wanting to trace strategy
// selection supply their own implementation.
type DebugLogger interface {
	Log(format string, args ...any)
}

// NoopLogger discards all messages.
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...any) {}

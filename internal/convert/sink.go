package convert

import "fmt"

// RemovalKind identifies which normalization rule removed a span.
type RemovalKind string

const (
	RemovedComment   RemovalKind = "comment"
	RemovedRootToken RemovalKind = "root-token"
)

// Sink receives structural diagnostics emitted while matching. It is
// threaded through the engine explicitly so callers (and tests) can
// observe every stripped span and warning without capturing streams.
type Sink interface {
	// Removed is called once per span stripped by the normalizer.
	Removed(kind RemovalKind, span string)
	// Warnf reports a non-fatal matching anomaly, such as a
	// dependency/parameter count mismatch.
	Warnf(format string, args ...any)
}

// NopSink discards every diagnostic.
type NopSink struct{}

func (NopSink) Removed(RemovalKind, string) {}

func (NopSink) Warnf(string, ...any) {}

// RecordingSink collects diagnostics for assertions in tests.
type RecordingSink struct {
	Removals []RecordedRemoval
	Warnings []string
}

// RecordedRemoval is one span stripped by the normalizer.
type RecordedRemoval struct {
	Kind RemovalKind
	Span string
}

func (s *RecordingSink) Removed(kind RemovalKind, span string) {
	s.Removals = append(s.Removals, RecordedRemoval{Kind: kind, Span: span})
}

func (s *RecordingSink) Warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// Package sink provides record outputs: semicolon-separated CSV, a
// formatted Excel workbook, a JSON-per-record directory archive, and a
// fan-out combining several of them. Field delimiters and styling are
// sink concerns; sinks receive records in discovery order and serialize
// an absent date as an empty value, never a placeholder.
package sink

import "github.com/mzerrouki/campusnews/record"

// Sink receives extracted records in discovery order. Close flushes any
// buffered output and releases resources.
type Sink interface {
	Write(rec record.Record) error
	Close() error
}

// MultiSink fans each record out to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write sends the record to every sink, stopping at the first failure.
func (m *MultiSink) Write(rec record.Record) error {
	for _, s := range m.sinks {
		if err := s.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink, returning the first error encountered.
func (m *MultiSink) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mzerrouki/campusnews/record"
)

// Header is the column order shared by the CSV and Excel outputs.
var Header = []string{"Title", "Date", "Description", "Link"}

// DefaultSeparator is the CSV field delimiter.
const DefaultSeparator = ';'

// SeparatorOrDefault returns the first rune of s, or DefaultSeparator
// when s is empty.
func SeparatorOrDefault(s string) rune {
	if s == "" {
		return DefaultSeparator
	}
	return []rune(s)[0]
}

// CSVSink writes records to a separator-delimited UTF-8 file, one row
// per record, with a header row.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVSink creates the output file and writes the header row.
func NewCSVSink(path string, separator rune) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = separator
	if err := writer.Write(Header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &CSVSink{file: file, writer: writer}, nil
}

// Write appends one record row. An absent date becomes an empty cell.
func (s *CSVSink) Write(rec record.Record) error {
	row := []string{rec.Title, rec.DateString(), rec.Description, rec.Link}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return s.file.Close()
}

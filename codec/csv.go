package codec

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV is the [Codec] for CSV records.
//
// Decoding yields all records as a [][]string, rows being free to differ in
// field count. Encoding requires a [][]string and terminates every record
// with a bare newline on all platforms, so that reads do not yield spurious
// blank records.
type CSV struct{}

// Decode reads all CSV records from r.
func (CSV) Decode(r io.Reader, opts *ReadOptions) (any, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("(codec-csv) %w: %w", ErrFormat, err)
	}

	return records, nil
}

// Encode writes v to w as newline-terminated CSV records.
func (CSV) Encode(w io.Writer, v any, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}

	records, ok := v.([][]string)
	if !ok {
		return fmt.Errorf("(codec-csv) %w: records must be [][]string", ErrInvalidContent)
	}

	writer := csv.NewWriter(w)
	if opts.Comma != 0 {
		writer.Comma = opts.Comma
	}

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("(codec-csv) %w: %w", ErrFormat, err)
	}

	return nil
}

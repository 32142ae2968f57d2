// Package magdata reads the BIS/BOS magnetometer CSV export into column sequences.
//
// The layout is positional: a header line that is always discarded, then rows of
// timestamp followed by the twelve channels. Any malformed row fails the whole read.
package magdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/iafilius/BIOMagPlot/src/logging"
)

// FieldsPerRow is the number of comma-separated fields in every data row.
const FieldsPerRow = 1 + NumChannels

// MaxLineBytes bounds a single line; rows are a few hundred bytes at most.
const MaxLineBytes = 1 << 20

var (
	ErrFieldCount = errors.New("wrong field count")
	ErrTimestamp  = errors.New("unparsable timestamp")
	ErrValue      = errors.New("non-numeric value")
)

// RowError reports the first malformed data row.
type RowError struct {
	Line  int    // 1-based line number in the file, header included
	Field int    // 0-based field index, -1 for field count errors
	Name  string // column name of Field
	Value string
	Err   error
}

func (e *RowError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field %d (%s) %q: %v", e.Line, e.Field, e.Name, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadFile opens path and parses it with Read. The file is closed before returning.
func ReadFile(path string, log *logging.Logger) (*Dataset, error) {
	log.Infof("Retrieving data from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	ds, err := Read(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read parses an export from r. The first line is skipped unconditionally.
func Read(r io.Reader, log *logging.Logger) (*Dataset, error) {
	start := time.Now()
	defer log.TimeTrack(start, "data retrieval")

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	ds := &Dataset{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		log.Debugf("Processing line %d: %q", lineNo, fields)
		if err := ds.appendRow(lineNo, fields); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	log.Infof("Data retrieval complete (%d rows)", ds.Len())
	return ds, nil
}

// appendRow converts one split line; nothing is appended unless every field converts.
func (d *Dataset) appendRow(lineNo int, fields []string) error {
	if len(fields) != FieldsPerRow {
		return &RowError{Line: lineNo, Field: -1, Err: fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), FieldsPerRow)}
	}
	ts, err := ParseTimestamp(fields[0])
	if err != nil {
		return &RowError{Line: lineNo, Field: 0, Name: "timestamp", Value: fields[0], Err: fmt.Errorf("%w: %v", ErrTimestamp, err)}
	}
	var vals [NumChannels]float64
	for i := 0; i < NumChannels; i++ {
		raw := fields[i+1]
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return &RowError{Line: lineNo, Field: i + 1, Name: Channel(i).String(), Value: raw, Err: fmt.Errorf("%w: %v", ErrValue, err)}
		}
		vals[i] = v
	}
	d.Times = append(d.Times, ts)
	for i, v := range vals {
		d.Values[i] = append(d.Values[i], v)
	}
	return nil
}

// ParseTimestamp accepts the date-time layouts found in exports (ISO-8601 with or
// without zone, space separated, slashes). Values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	return dateparse.ParseIn(s, time.UTC)
}

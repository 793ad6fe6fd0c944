package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// ErrEmpty is returned when a table with zero rows would be written.
// Callers suppress the output file in that case instead of producing an
// empty document.
var ErrEmpty = errors.New("no records to write")

// Core column names of the normalized schema.
const (
	colScheme       = "scheme"
	colOperation    = "operation"
	colParticipants = "n_participants"
	colThreshold    = "threshold"
	colAttributes   = "attributes"
	colMeanMs       = "mean_ms"
)

// Optional per-scheme parameter columns, present only when some record
// carries them.
const (
	colThreshold2      = "threshold2"
	colLeakage         = "leakage"
	colTotalAttributes = "total_attributes"
)

// Short header names used by the s3id result tables, accepted as aliases
// when reading.
var columnAliases = map[string]string{
	"N":  colParticipants,
	"n":  colAttributes,
	"t":  colThreshold,
	"t'": colThreshold2,
	"l":  colLeakage,
	"L":  colTotalAttributes,
}

// Columns returns the header for a set of records: the fixed core schema
// plus whichever optional parameter columns any record carries, with
// mean_ms always last.
func Columns(records []Record) []string {
	var hasT2, hasLeak, hasTotal bool
	for _, r := range records {
		hasT2 = hasT2 || r.Threshold2 != nil
		hasLeak = hasLeak || r.Leakage != nil
		hasTotal = hasTotal || r.TotalAttributes != nil
	}

	cols := []string{
		colScheme, colOperation, colParticipants, colThreshold, colAttributes,
	}
	if hasT2 {
		cols = append(cols, colThreshold2)
	}
	if hasLeak {
		cols = append(cols, colLeakage)
	}
	if hasTotal {
		cols = append(cols, colTotalAttributes)
	}

	return append(cols, colMeanMs)
}

// WriteCSV writes records as one CSV table to w. Writing an empty set
// returns ErrEmpty.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return ErrEmpty
	}

	cols := Columns(records)

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := make([]string, 0, len(cols))
		for _, col := range cols {
			row = append(row, fieldValue(r, col))
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", r.Key(), err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a table previously written by WriteCSV, or one of the
// original per-scheme tables using the short s3id header names.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]string, len(header))
	for i, name := range header {
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}

		cols[i] = name
	}

	for _, required := range []string{
		colScheme, colOperation, colParticipants,
		colThreshold, colAttributes, colMeanMs,
	} {
		if !slices.Contains(cols, required) {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var records []Record

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec, err := parseRow(cols, row)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

// WriteFile writes records to a CSV file at path, creating or truncating
// it. No file is touched when the record set is empty.
func WriteFile(path string, records []Record) error {
	if len(records) == 0 {
		return ErrEmpty
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadFile reads a CSV table from path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func fieldValue(r Record, col string) string {
	switch col {
	case colScheme:
		return r.Scheme
	case colOperation:
		return r.Operation
	case colParticipants:
		return strconv.Itoa(r.Participants)
	case colThreshold:
		return strconv.Itoa(r.Threshold)
	case colAttributes:
		return strconv.Itoa(r.Attributes)
	case colThreshold2:
		return optValue(r.Threshold2)
	case colLeakage:
		return optValue(r.Leakage)
	case colTotalAttributes:
		return optValue(r.TotalAttributes)
	case colMeanMs:
		return strconv.FormatFloat(r.MeanMs, 'g', -1, 64)
	default:
		return ""
	}
}

func parseRow(cols, row []string) (Record, error) {
	if len(row) != len(cols) {
		return Record{}, fmt.Errorf(
			"row has %d fields, header has %d", len(row), len(cols),
		)
	}

	var (
		rec Record
		err error
	)

	for i, col := range cols {
		val := row[i]

		switch col {
		case colScheme:
			rec.Scheme = val
		case colOperation:
			rec.Operation = val
		case colParticipants:
			rec.Participants, err = strconv.Atoi(val)
		case colThreshold:
			rec.Threshold, err = strconv.Atoi(val)
		case colAttributes:
			rec.Attributes, err = strconv.Atoi(val)
		case colThreshold2:
			rec.Threshold2, err = parseOpt(val)
		case colLeakage:
			rec.Leakage, err = parseOpt(val)
		case colTotalAttributes:
			rec.TotalAttributes, err = parseOpt(val)
		case colMeanMs:
			rec.MeanMs, err = strconv.ParseFloat(val, 64)
		}

		if err != nil {
			return Record{}, fmt.Errorf("column %s: %w", col, err)
		}
	}

	return rec, nil
}

func optValue(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}

func parseOpt(val string) (*int, error) {
	if val == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/graphsynth/degree"
)

// DegreeHeader is the fixed header of the degree distribution CSV.
var DegreeHeader = []string{"Count", "In-degree", "Out-degree"}

// EncodeDegreeCSV writes t as CSV: the header, then one row per degree value
// in ascending order.
func EncodeDegreeCSV(w io.Writer, t degree.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DegreeHeader); err != nil {
		return err
	}
	record := make([]string, 3)
	for _, r := range t.Rows() {
		record[0] = strconv.Itoa(r.Degree)
		record[1] = strconv.Itoa(r.InCount)
		record[2] = strconv.Itoa(r.OutCount)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// DecodeDegreeCSV parses a degree CSV produced by EncodeDegreeCSV.
//
// Errors: ErrBadHeader, ErrBadRecord, degree.ErrBadRows.
func DecodeDegreeCSV(r io.Reader) (degree.Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true // the first record fixes the field count for the rest

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: empty input: %w", ErrBadHeader)
	}
	if err != nil {
		return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: %w: %w", ErrBadRecord, err)
	}
	if len(header) != len(DegreeHeader) {
		return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: %d columns, want %d: %w",
			len(header), len(DegreeHeader), ErrBadHeader)
	}
	for i, want := range DegreeHeader {
		if header[i] != want {
			return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: column %d is %q, want %q: %w",
				i, header[i], want, ErrBadHeader)
		}
	}

	var rows []degree.Row
	var vals [3]int
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: %w: %w", ErrBadRecord, err)
		}
		for i, field := range record {
			if vals[i], err = strconv.Atoi(field); err != nil {
				return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: line %d column %d: %w: %w",
					line, i, ErrBadRecord, err)
			}
		}
		rows = append(rows, degree.Row{Degree: vals[0], InCount: vals[1], OutCount: vals[2]})
	}

	t, err := degree.FromRows(rows)
	if err != nil {
		return degree.Table{}, fmt.Errorf("DecodeDegreeCSV: %w", err)
	}
	return t, nil
}

// WriteDegreeCSV atomically writes t to path.
func WriteDegreeCSV(path string, t degree.Table) error {
	return writeAtomic(path, func(w io.Writer) error {
		return EncodeDegreeCSV(w, t)
	})
}

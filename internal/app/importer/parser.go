// Package importer loads the vocabulary dataset from a CSV file into the
// database on first startup. The file holds one allowed combination per
// row: section;subject;verb;object, where section names the verb group.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one parsed dataset row.
type Row struct {
	Section string
	Subject string
	Verb    string
	Object  string
}

// Parse reads the dataset CSV from r. The first row is a header and is
// skipped. Blank-ish lines (only whitespace or delimiters) are counted as
// skipped; rows with the wrong column count or an empty cell are counted
// as malformed. Neither fails the whole file.
func Parse(r io.Reader, comma rune) ([]Row, int, int, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // column count is checked per row

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, 0, 0, nil
		}
		return nil, 0, 0, fmt.Errorf("read header: %w", err)
	}

	var (
		rows      []Row
		skipped   int
		malformed int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("read row: %w", err)
		}

		if recordEmpty(record) {
			skipped++
			continue
		}

		row, ok := parseRecord(record)
		if !ok {
			malformed++
			continue
		}
		rows = append(rows, row)
	}

	return rows, skipped, malformed, nil
}

func parseRecord(record []string) (Row, bool) {
	if len(record) != 4 {
		return Row{}, false
	}

	row := Row{
		Section: strings.TrimSpace(record[0]),
		Subject: strings.TrimSpace(record[1]),
		Verb:    strings.TrimSpace(record[2]),
		Object:  strings.TrimSpace(record[3]),
	}
	if row.Section == "" || row.Subject == "" || row.Verb == "" || row.Object == "" {
		return Row{}, false
	}

	return row, true
}

func recordEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Package ingest parses uploaded sales CSVs into rows ready for the store.
// Validation is strict: a wrong header aborts before any row is read, and
// the first bad row aborts the whole batch.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// RequiredColumns must all be present in the CSV header.
var RequiredColumns = []string{"customer_name", "amount", "date"}

// ErrEmptyInput is returned when the CSV carries no data rows.
var ErrEmptyInput = errors.New("CSV file is empty")

// MissingColumnsError names every required column absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "CSV must contain columns: " + strings.Join(e.Columns, ", ")
}

// RowError reports the first failing data row. Row is 1-based file order.
type RowError struct {
	Row    int
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("error processing row %d: invalid %s: %s", e.Row, e.Field, e.Reason)
}

// Row is one validated sales transaction.
type Row struct {
	CustomerName string
	Amount       float64
	Date         time.Time
}

// Accepted transaction date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// ParseSales reads the whole CSV and returns its rows, or the first error
// encountered. Amounts of any sign are accepted; the pipeline does not
// judge domain validity.
func ParseSales(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Row: rowNum, Field: "row", Reason: err.Error()}
		}

		amountText := strings.TrimSpace(record[index["amount"]])
		amount, err := strconv.ParseFloat(amountText, 64)
		if err != nil {
			return nil, &RowError{Row: rowNum, Field: "amount", Reason: fmt.Sprintf("%q is not a number", amountText)}
		}

		dateText := strings.TrimSpace(record[index["date"]])
		date, ok := parseDate(dateText)
		if !ok {
			return nil, &RowError{Row: rowNum, Field: "date", Reason: fmt.Sprintf("%q is not a recognized date", dateText)}
		}

		rows = append(rows, Row{
			CustomerName: record[index["customer_name"]],
			Amount:       amount,
			Date:         date,
		})
	}

	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return rows, nil
}

func parseDate(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

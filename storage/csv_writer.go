package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"vacancy-stats/models"
)

var csvHeader = []string{
	"source", "id", "title", "salary_from", "salary_to", "currency", "url", "fetched_at",
}

// CSVWriter dumps raw vacancies to a CSV file, one row per vacancy.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteVacancies appends one row per vacancy. Missing salary fields are left empty.
func (c *CSVWriter) WriteVacancies(vacancies []models.Vacancy) error {
	for _, v := range vacancies {
		var from, to, currency string
		if v.Salary != nil {
			from = formatBound(v.Salary.From)
			to = formatBound(v.Salary.To)
			currency = v.Salary.Currency
		}

		row := []string{
			v.Source,
			v.ID,
			v.Title,
			from,
			to,
			currency,
			v.URL,
			v.FetchedAt.Format(time.RFC3339),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatBound(f float64) string {
	if f <= 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vacancy-stats/models"
)

func TestCSVWriterDumpsVacancies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "raw.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	fetched := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	err = w.WriteVacancies([]models.Vacancy{
		{Source: "hh", ID: "1", Title: "Python developer", URL: "https://hh.ru/vacancy/1",
			Salary: &models.Salary{From: 100000, Currency: "RUR"}, FetchedAt: fetched},
		{Source: "superjob", ID: "2", Title: "Go, developer", FetchedAt: fetched},
	})
	if err != nil {
		t.Fatalf("WriteVacancies: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows: got %d, want 3 (header + 2)", len(records))
	}
	if got := records[1]; got[3] != "100000" || got[4] != "" || got[5] != "RUR" {
		t.Errorf("salary columns: got %v", got[3:6])
	}
	if got := records[2][2]; got != "Go, developer" {
		t.Errorf("title with comma: got %q", got)
	}
	if got := records[1][7]; got != "2024-03-01T12:00:00Z" {
		t.Errorf("fetched_at: got %q", got)
	}
}

package services

import (
	"bytes"
	"strings"
	"testing"

	"vacancy-stats/models"
)

func TestTableRowsSingleLanguage(t *testing.T) {
	rows := TableRows([]models.LanguageSummary{
		{Language: "Python", Found: 3, Processed: 1, AverageSalary: 125000},
	})

	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	for i, r := range rows {
		if len(r) != 4 {
			t.Errorf("row %d: got %d columns, want 4", i, len(r))
		}
	}
	if rows[0][0] != "Язык программирования" || rows[0][3] != "Средняя зарплата" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][0] != "Python" || rows[1][1] != 3 || rows[1][2] != 1 || rows[1][3] != 125000 {
		t.Errorf("data row: got %v", rows[1])
	}
}

func TestTableRowsKeepOrder(t *testing.T) {
	rows := TableRows([]models.LanguageSummary{
		{Language: "Shell"}, {Language: "C"}, {Language: "Go"},
	})
	got := []any{rows[1][0], rows[2][0], rows[3][0]}
	want := []any{"Shell", "C", "Go"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %v, want %v", i+1, got[i], want[i])
		}
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	RenderReport(&buf, &models.SourceReport{
		Title: "HeadHunter Moscow",
		Languages: []models.LanguageSummary{
			{Language: "Go", Found: 12, Processed: 7, AverageSalary: 310000},
		},
	})

	out := buf.String()
	for _, want := range []string{"HeadHunter Moscow", "Вакансий найдено", "Go", "310000"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}

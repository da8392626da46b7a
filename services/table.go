package services

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"vacancy-stats/models"
)

var tableHeader = table.Row{
	"Язык программирования",
	"Вакансий найдено",
	"Вакансий обработано",
	"Средняя зарплата",
}

// TableRows lays summaries out as rows: the header first, then one row per
// language in the order given.
func TableRows(summaries []models.LanguageSummary) []table.Row {
	rows := make([]table.Row, 0, len(summaries)+1)
	rows = append(rows, tableHeader)
	for _, s := range summaries {
		rows = append(rows, table.Row{string(s.Language), s.Found, s.Processed, s.AverageSalary})
	}
	return rows
}

// RenderTable prints rows produced by TableRows under title, every column left-aligned.
func RenderTable(w io.Writer, title string, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleDefault)

	if len(rows) > 0 {
		t.AppendHeader(rows[0])
		t.AppendRows(rows[1:])

		configs := make([]table.ColumnConfig, len(rows[0]))
		for i := range configs {
			configs[i] = table.ColumnConfig{
				Number:      i + 1,
				Align:       text.AlignLeft,
				AlignHeader: text.AlignLeft,
			}
		}
		t.SetColumnConfigs(configs)
	}
	t.Style().Format.Header = text.FormatDefault

	t.Render()
}

// RenderReport prints one table for a source report.
func RenderReport(w io.Writer, report *models.SourceReport) {
	RenderTable(w, report.Title, TableRows(report.Languages))
}

package services

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"vacancy-stats/models"
	"vacancy-stats/utils"
)

// LanguageStats accumulates vacancies for one language on one source.
// It exposes no average; call Finalize once all vacancies have been added.
type LanguageStats struct {
	language  models.Language
	currency  string
	found     int
	processed int
	total     float64
}

// NewLanguageStats creates an empty accumulator. Only salaries quoted in
// currency contribute to the average.
func NewLanguageStats(language models.Language, currency string) *LanguageStats {
	return &LanguageStats{language: language, currency: currency}
}

// Add counts v as found and, when it carries a usable salary in the local
// currency, as processed. It reports whether a salary estimate was taken.
func (s *LanguageStats) Add(v models.Vacancy) bool {
	s.found++

	if v.Salary == nil || !strings.EqualFold(v.Salary.Currency, s.currency) {
		return false
	}
	estimate, ok := PredictSalary(v.Salary.From, v.Salary.To)
	if !ok {
		return false
	}
	s.processed++
	s.total += estimate
	return true
}

// Finalize computes the average salary, truncated to an integer.
func (s *LanguageStats) Finalize() models.LanguageSummary {
	summary := models.LanguageSummary{
		Language:  s.language,
		Found:     s.found,
		Processed: s.processed,
	}
	if s.processed > 0 {
		summary.AverageSalary = int(s.total / float64(s.processed))
	}
	return summary
}

// MatchesLanguage reports whether the language name occurs in title,
// compared after Unicode case folding.
func MatchesLanguage(language models.Language, title string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(title), fold.String(string(language)))
}

// Aggregator turns a stream of vacancies into per-language statistics.
type Aggregator struct {
	logger *utils.Logger
}

func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate consumes vacancies until the sequence is exhausted and returns the
// finalized summary. Vacancies whose title does not mention the language are
// skipped. The first error yielded by the sequence aborts aggregation.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	language models.Language,
	currency string,
	vacancies iter.Seq2[models.Vacancy, error],
) (models.LanguageSummary, error) {
	stats := NewLanguageStats(language, currency)
	skipped := 0

	for v, err := range vacancies {
		if err != nil {
			return models.LanguageSummary{}, fmt.Errorf("aggregate %s: %w", language, err)
		}
		if err := ctx.Err(); err != nil {
			return models.LanguageSummary{}, err
		}
		if !MatchesLanguage(language, v.Title) {
			skipped++
			a.logger.Debug("[aggregator] %s: %q does not mention the language, skipped", language, v.Title)
			continue
		}
		stats.Add(v)
	}

	summary := stats.Finalize()
	a.logger.Info("[aggregator] %s: found %d, processed %d, average %d (skipped %d unrelated)",
		language, summary.Found, summary.Processed, summary.AverageSalary, skipped)
	return summary, nil
}

package services

import (
	"context"
	"fmt"
	"iter"

	"vacancy-stats/models"
	"vacancy-stats/storage"
	"vacancy-stats/utils"
)

// Source is a job board that can be searched one language at a time.
type Source interface {
	// Name is the display title of the source's table, e.g. "HeadHunter Moscow".
	Name() string
	// Currency is the code the source uses for its local currency.
	Currency() string
	// Vacancies lazily pages through the search results for language.
	Vacancies(ctx context.Context, language models.Language) iter.Seq2[models.Vacancy, error]
}

// ReportService runs every source over every language, strictly one after another.
type ReportService struct {
	logger     *utils.Logger
	aggregator *Aggregator
	sources    []Source
	languages  []models.Language

	// raw is optional; when set it receives every fetched vacancy once all
	// sources completed.
	raw storage.VacancyWriter
}

func NewReportService(logger *utils.Logger, sources []Source, languages []models.Language) *ReportService {
	return &ReportService{
		logger:     logger,
		aggregator: NewAggregator(logger),
		sources:    sources,
		languages:  languages,
	}
}

// WithRawWriter makes Run dump every fetched vacancy to w.
func (s *ReportService) WithRawWriter(w storage.VacancyWriter) *ReportService {
	s.raw = w
	return s
}

// Run returns one report per source, in source order. Any failure aborts
// the whole run and no report is returned.
func (s *ReportService) Run(ctx context.Context) ([]*models.SourceReport, error) {
	reports := make([]*models.SourceReport, 0, len(s.sources))
	var fetched []models.Vacancy

	for _, src := range s.sources {
		s.logger.Info("[report] === %s: %d languages ===", src.Name(), len(s.languages))

		report := &models.SourceReport{
			Title:     src.Name(),
			Languages: make([]models.LanguageSummary, 0, len(s.languages)),
		}
		for _, lang := range s.languages {
			vacancies := src.Vacancies(ctx, lang)
			if s.raw != nil {
				vacancies = collect(vacancies, &fetched)
			}

			summary, err := s.aggregator.Aggregate(ctx, lang, src.Currency(), vacancies)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", src.Name(), err)
			}
			report.Languages = append(report.Languages, summary)
		}
		reports = append(reports, report)
	}

	if s.raw != nil {
		if err := s.raw.WriteVacancies(fetched); err != nil {
			return nil, fmt.Errorf("raw dump: %w", err)
		}
		s.logger.Info("[report] Dumped %d raw vacancies", len(fetched))
	}

	return reports, nil
}

// collect passes seq through unchanged while appending every vacancy to dst.
func collect(seq iter.Seq2[models.Vacancy, error], dst *[]models.Vacancy) iter.Seq2[models.Vacancy, error] {
	return func(yield func(models.Vacancy, error) bool) {
		for v, err := range seq {
			if err == nil {
				*dst = append(*dst, v)
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

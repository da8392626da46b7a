package storage

import "vacancy-stats/models"

// VacancyWriter is the interface for dumping fetched vacancies as they came from the source.
type VacancyWriter interface {
	WriteVacancies(vacancies []models.Vacancy) error
	Close() error
}

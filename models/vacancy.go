package models

import "time"

// Language is a programming language name used both as the search keyword
// and as the aggregation key.
type Language string

// Salary is the salary range published with a vacancy.
// A bound that is zero or negative means the posting did not state it.
type Salary struct {
	From     float64
	To       float64
	Currency string
}

// Vacancy is one job posting as returned by a source, before any estimation.
type Vacancy struct {
	Source    string
	ID        string
	Title     string
	URL       string
	Salary    *Salary
	FetchedAt time.Time
}

// LanguageSummary holds the finalized statistics for one language on one source.
type LanguageSummary struct {
	Language      Language
	Found         int
	Processed     int
	AverageSalary int
}

// SourceReport is the per-source result rendered as one table.
// Languages keep the order in which they were requested.
type SourceReport struct {
	Title     string
	Languages []LanguageSummary
}

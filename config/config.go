package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"vacancy-stats/models"
)

// DefaultLanguages is the fixed set of languages the report covers, in table order.
var DefaultLanguages = []models.Language{
	"JavaScript", "Java", "Python", "Ruby", "PHP", "C++", "C#", "C", "Go", "Shell",
}

// Search scope ids. The report is always about programmers in Moscow.
const (
	hhProgrammerRole       = 96
	hhMoscowArea           = 1
	sjDevelopmentCatalogue = 48
	sjMoscowTown           = 4
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SuperJobToken string

	HHBaseURL          string
	HHUserAgent        string
	HHProfessionalRole int
	HHArea             int
	HHPeriodDays       int

	SJBaseURL   string
	SJCatalogue int
	SJTown      int

	PerPage      int
	MaxVacancies int
	RateLimitMs  int

	RawCSVPath string
}

// ErrMissingToken is returned by Validate when SJ_TOKEN is not set.
var ErrMissingToken = errors.New("config: SJ_TOKEN is not set")

// Load reads the given .env file (if present) and returns a populated Config struct.
func Load(envFile string) *Config {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("[config] No %s file found, falling back to system env vars", envFile)
	}

	return &Config{
		SuperJobToken: os.Getenv("SJ_TOKEN"),

		HHBaseURL:          getEnv("HH_BASE_URL", "https://api.hh.ru"),
		HHUserAgent:        getEnv("HH_USER_AGENT", "vacancy-stats/1.0"),
		HHProfessionalRole: hhProgrammerRole,
		HHArea:             hhMoscowArea,
		HHPeriodDays:       getEnvInt("HH_PERIOD_DAYS", 30),

		SJBaseURL:   getEnv("SJ_BASE_URL", "https://api.superjob.ru/2.0"),
		SJCatalogue: sjDevelopmentCatalogue,
		SJTown:      sjMoscowTown,

		PerPage:      getEnvInt("PER_PAGE", 20),
		MaxVacancies: getEnvInt("MAX_VACANCIES", 1000),
		RateLimitMs:  getEnvInt("RATE_LIMIT_MS", 0),

		RawCSVPath: getEnv("RAW_CSV_PATH", ""),
	}
}

// Validate reports configuration that would make the run pointless.
// It must be called before any request is sent.
func (c *Config) Validate() error {
	if c.SuperJobToken == "" {
		return ErrMissingToken
	}
	if c.PerPage <= 0 {
		return errors.New("config: PER_PAGE must be positive")
	}
	if c.MaxVacancies < c.PerPage {
		return errors.New("config: MAX_VACANCIES must be at least PER_PAGE")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

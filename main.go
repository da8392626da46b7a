package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vacancy-stats/config"
	"vacancy-stats/scraper/headhunter"
	"vacancy-stats/scraper/superjob"
	"vacancy-stats/services"
	"vacancy-stats/storage"
	"vacancy-stats/utils"
)

var (
	envFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "vacancy-stats",
	Short:        "Prints average programmer salaries per language from HeadHunter and SuperJob.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to read before the environment")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log every request")
}

func run(ctx context.Context) error {
	logger := utils.NewLogger(os.Stderr, debug)
	cfg := config.Load(envFile)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("=== Vacancy statistics starting ===")
	logger.Info("Config: languages: %d | per page: %d | max vacancies: %d | rate: %dms",
		len(config.DefaultLanguages), cfg.PerPage, cfg.MaxVacancies, cfg.RateLimitMs)

	throttle := utils.NewThrottle(cfg.RateLimitMs)
	hh := headhunter.New(headhunter.Options{
		BaseURL:          cfg.HHBaseURL,
		UserAgent:        cfg.HHUserAgent,
		ProfessionalRole: cfg.HHProfessionalRole,
		Area:             cfg.HHArea,
		PeriodDays:       cfg.HHPeriodDays,
		PerPage:          cfg.PerPage,
	}, throttle, logger)
	sj := superjob.New(superjob.Options{
		BaseURL:      cfg.SJBaseURL,
		Token:        cfg.SuperJobToken,
		Catalogue:    cfg.SJCatalogue,
		Town:         cfg.SJTown,
		PerPage:      cfg.PerPage,
		MaxVacancies: cfg.MaxVacancies,
	}, throttle, logger)

	svc := services.NewReportService(logger, []services.Source{hh, sj}, config.DefaultLanguages)

	if cfg.RawCSVPath != "" {
		csvWriter, err := storage.NewCSVWriter(cfg.RawCSVPath)
		if err != nil {
			return fmt.Errorf("create raw CSV writer: %w", err)
		}
		defer csvWriter.Close()
		svc.WithRawWriter(csvWriter)
	}

	reports, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	for _, report := range reports {
		services.RenderReport(os.Stdout, report)
		fmt.Println()
	}

	if cfg.RawCSVPath != "" {
		logger.Info("Raw vacancies saved to %s", cfg.RawCSVPath)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

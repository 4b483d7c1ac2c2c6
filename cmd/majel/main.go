package main

import (
	"encoding/json"
	"fmt"
	"os"

	"majel-backend/internal/catalog"
	"majel-backend/internal/config"
	"majel-backend/internal/database"
	"majel-backend/internal/logger"
	"majel-backend/internal/repository"
	"majel-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	root := &cobra.Command{
		Use:           "majel",
		Short:         "Fleet loadout and dock assignment planner",
		Long:          "majel manages crew loadouts, dock assignments, and plan items for a Star Trek Fleet Command roster, and validates the plan for conflicts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(seedCmd(), checkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the environment, configuration, and database connection shared
// by every subcommand
func setup() (*gorm.DB, *config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	return db, cfg, nil
}

// seedCmd inserts any missing built-in intents
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the built-in intent catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := setup()
			if err != nil {
				return err
			}

			log := logger.ForComponent("seed")
			intents := service.NewIntentService(repository.NewIntentRepository(db), validator.New())

			inserted, err := intents.SeedBuiltins()
			if err != nil {
				return fmt.Errorf("seed intents: %w", err)
			}
			log.WithField("inserted", inserted).Info("intent catalog seeded")
			return nil
		},
	}
}

// checkCmd validates the current plan and prints the report as JSON. Exits
// non-zero when the plan has conflicts, so it can gate automation.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the current plan and print the conflict report",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := setup()
			if err != nil {
				return err
			}

			validation := service.NewValidationService(
				repository.NewPlanItemRepository(db),
				catalog.NewGormReference(db),
			)

			report, err := validation.ValidatePlan()
			if err != nil {
				return fmt.Errorf("validate plan: %w", err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}

			if !report.Valid {
				os.Exit(2)
			}
			return nil
		},
	}
}

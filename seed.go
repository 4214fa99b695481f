package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"train-induction-ai/config"
	"train-induction-ai/database"
	"train-induction-ai/fleet"
	"train-induction-ai/models"
	"train-induction-ai/services"
)

var (
	seedCount   int
	seedValue   int64
	seedFromCSV string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with a synthetic fleet",
	Long: `seed replaces the trainsets table with a generated fleet.

The generator and health score are configured by the YAML profile in
FLEET_PROFILE (built-in defaults otherwise). With --from-csv the fleet is
read from an exported CSV file instead and every health score is recomputed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return runSeed(ctx)
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 0, "number of trainsets to generate (default: profile count)")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed for a reproducible fleet (default: time based)")
	seedCmd.Flags().StringVar(&seedFromCSV, "from-csv", "", "import trainsets from a CSV file instead of generating")
}

func runSeed(ctx context.Context) error {
	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	trains, err := buildFleet(profile)
	if err != nil {
		return err
	}

	db, dialect, err := database.Connect(ctx, cfg, log, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		return err
	}

	store := services.NewTrainsetStore(db, dialect)
	if err := store.ReplaceAll(ctx, trains); err != nil {
		return err
	}

	log.Info("Database seeded", "trainsets", len(trains), "driver", string(dialect))
	return nil
}

func buildFleet(profile fleet.Profile) ([]models.Trainset, error) {
	if seedFromCSV != "" {
		f, err := os.Open(seedFromCSV)
		if err != nil {
			return nil, fmt.Errorf("failed to open csv: %w", err)
		}
		defer f.Close()
		return fleet.ReadCSV(f, profile.HealthWeights, profile.Thresholds)
	}

	seed := seedValue
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := fleet.NewGenerator(profile, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	count := profile.Count
	if seedCount > 0 {
		count = seedCount
	}
	log.Info("Generating fleet", "count", count, "seed", seed, "base_date", gen.BaseDate())
	return gen.Generate(count), nil
}

package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/arcadia/internal/generator"
	"github.com/Rana718/arcadia/internal/loader"
	"github.com/Rana718/arcadia/internal/seeder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with synthetic data",
	Long: `
Generate a synthetic bundle and write it into the configured database, creating
the suppliers, categories, spend_data, risk_assessments, supplier_performance,
contracts and risk_alerts tables when they do not exist.

Examples:
  arcadia seed
  arcadia seed --truncate
  arcadia seed --batch 500 --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := openAdapter(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		log := newLogger(cfg)
		defer log.Sync()

		opts := []generator.Option{}
		if cfg.Seed != 0 {
			opts = append(opts, generator.WithSeed(cfg.Seed))
		}
		tables := generator.New(opts...).All(loader.New(cfg).Sizes())

		truncate, _ := cmd.Flags().GetBool("truncate")
		batch, _ := cmd.Flags().GetInt("batch")
		force, _ := cmd.Flags().GetBool("force")

		res, err := seeder.New(adapter, log).Seed(ctx, tables, seeder.Config{
			Truncate: truncate,
			Batch:    batch,
			Force:    force,
		})
		if err != nil {
			return err
		}

		for _, name := range res.Order {
			if n, ok := res.Inserted[name]; ok {
				color.White("  • %-22s %6d rows", name, n)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("truncate", false, "Clear tables before seeding")
	seedCmd.Flags().Int("batch", seeder.DefaultBatch, "Rows per insert statement")
	seedCmd.Flags().Bool("force", false, "Skip failing tables instead of stopping")
}

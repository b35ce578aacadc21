package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/arcadia/internal/loader"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the data comes from",
	Long: `Show the data source decision and what was loaded:
- whether the database or the synthetic generator backs the datasets
- why the synthetic generator was chosen, when it was
- the row count of every dataset`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		log := newLogger(cfg)
		l, cleanup := newLoader(ctx, cfg, log)
		defer cleanup()

		b, err := l.Load(ctx)
		if err != nil {
			return err
		}

		color.Cyan("📊 Data status")
		fmt.Printf("  Provider:  %s\n", cfg.Database.Provider)
		fmt.Printf("  Run:       %s\n", b.RunID)
		fmt.Printf("  Loaded at: %s\n", b.GeneratedAt.Format("2006-01-02 15:04:05"))
		if b.Source == loader.SourceDatabase {
			color.Green("  Source:    %s", b.Source)
		} else {
			color.Yellow("  Source:    %s (%s)", b.Source, b.Reason)
		}
		fmt.Println()

		counts := b.RowCounts()
		for _, name := range b.Names() {
			fmt.Printf("  %-18s %6d rows\n", name, counts[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

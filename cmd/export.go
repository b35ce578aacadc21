package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/arcadia/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the loaded datasets",
	Long: `
Load every dataset the way the dashboard does (database when available and
provisioned, synthetic otherwise) and write them to disk.
Supported formats: json (default), csv, yaml, xlsx, sqlite

Examples:
  arcadia export
  arcadia export --format csv
  arcadia export --format xlsx --out reports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		ctx := context.Background()
		log := newLogger(cfg)
		l, cleanup := newLoader(ctx, cfg, log)
		defer cleanup()

		bundle, err := l.Load(ctx)
		if err != nil {
			return err
		}
		color.Cyan("📦 Loaded %d datasets from %s data", len(bundle.Tables), bundle.Source)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.ExportPath
		}
		format, _ := cmd.Flags().GetString("format")

		exportPath, err := export.Write(ctx, bundle.Tables, out, format)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Export completed: %s\n", exportPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", export.FormatJSON, fmt.Sprintf("Output format %v", export.Formats))
	exportCmd.Flags().String("out", "", "Output directory (default export_path)")
}

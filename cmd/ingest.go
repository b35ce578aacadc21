package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/export"
	"github.com/Rana718/arcadia/internal/ingest"
	"github.com/Rana718/arcadia/internal/metrics"
)

func dataTypeNames() string {
	names := make([]string, 0, len(ingest.DataTypes()))
	for _, d := range ingest.DataTypes() {
		names = append(names, fmt.Sprintf("%q", d.String()))
	}
	return strings.Join(names, ", ")
}

var ingestCmd = &cobra.Command{
	Use:   "ingest FILE",
	Short: "Validate an uploaded CSV or XLSX file",
	Long: fmt.Sprintf(`
Parse and validate a user-supplied file against its declared data type.
Supported data types: %s

Examples:
  arcadia ingest spend.csv --type "Spend Data"
  arcadia ingest contracts.xlsx --type "Contract Data" --out data/clean --format csv`, dataTypeNames()),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeName, _ := cmd.Flags().GetString("type")
		dt, err := ingest.ParseDataType(typeName)
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		res := ingest.Process(filepath.Base(args[0]), file, dt)
		metrics.ObserveUpload(dt.String(), res.Success)

		if !res.Success {
			color.Red("❌ %s", res.Message)
			if res.DetectedType != "" && res.DetectedType != dt.String() {
				color.Yellow("💡 The file looks like %s. Try --type %q", res.DetectedType, res.DetectedType)
			}
			return fmt.Errorf("ingestion failed")
		}
		color.Green("✅ %s", res.Message)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return nil
		}
		format, _ := cmd.Flags().GetString("format")
		path, err := export.Write(context.Background(), map[string]*dataset.Table{dt.Table(): res.Table}, out, format)
		if err != nil {
			return err
		}
		color.Cyan("📁 Written to %s", path)
		return nil
	},
}

var templateCmd = &cobra.Command{
	Use:   "template TYPE",
	Short: "Write a CSV upload template for a data type",
	Long: fmt.Sprintf(`
Write a CSV header and one example row for the given data type.
Supported data types: %s

Examples:
  arcadia template "Spend Data"
  arcadia template "Risk Assessment" --out risk_template.csv`, dataTypeNames()),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, err := ingest.ParseDataType(args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return ingest.WriteTemplate(os.Stdout, dt)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		if err := ingest.WriteTemplate(f, dt); err != nil {
			return err
		}
		color.Green("✅ Template written to %s", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().String("type", "", "Declared data type of the file")
	ingestCmd.MarkFlagRequired("type")
	ingestCmd.Flags().String("out", "", "Write the cleaned table to this directory")
	ingestCmd.Flags().String("format", export.FormatCSV, fmt.Sprintf("Output format %v", export.Formats))

	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().String("out", "", "Output file (default stdout)")
}

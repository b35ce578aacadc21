package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/arcadia/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Arcadia project",
	Long:  `Write a default arcadia.config.json and create the export directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}

		color.Green("✅ Created %s", config.FileName)
		color.Cyan("\n📝 Next steps:")
		color.White("  1. Run 'arcadia generate' to write synthetic datasets")
		color.White("  2. Set DATABASE_URL and use_mock_data=false to read from a database")
		color.White("  3. Run 'arcadia seed' to populate that database")
		color.White("  4. Run 'arcadia serve' to start the API")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

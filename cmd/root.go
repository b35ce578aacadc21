package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.4.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════════╗",
		"║      █████╗ ██████╗  ██████╗ █████╗ ██████╗ ██╗ █████╗       ║",
		"║     ██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██║██╔══██╗      ║",
		"║     ███████║██████╔╝██║     ███████║██║  ██║██║███████║      ║",
		"║     ██╔══██║██╔══██╗██║     ██╔══██║██║  ██║██║██╔══██║      ║",
		"║     ██║  ██║██║  ██║╚██████╗██║  ██║██████╔╝██║██║  ██║      ║",
		"║     ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═════╝ ╚═╝╚═╝  ╚═╝      ║",
		"║                                                              ║",
		"║        🏗  Construction Procurement Insights Toolkit 🏗        ║",
		"║                                                              ║",
		"║     Spend • Risk • Performance • Contracts • Alerts          ║",
		"╚══════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "arcadia",
	Short: "Synthetic construction procurement data, loading and ingestion",
	Long: `
Arcadia produces the datasets behind a construction procurement dashboard:
supplier spend, risk assessments, performance evaluations, contracts, risk
alerts, savings opportunities, improvement plans and relationship timelines.

Data comes from a configured database when one is available and fully
provisioned, otherwise from a realistic synthetic generator.

Database Support:
- PostgreSQL
- MySQL
- SQLite
- MongoDB`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("Arcadia CLI version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./arcadia.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("arcadia.config")
	}

	viper.AutomaticEnv()

	// a missing config file is fine: every setting has a default
	viper.ReadInConfig()
}

package cli

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/resumecoach/backend/config"
)

// version is overridden at build time with -ldflags "-X .../cli.version=..."
var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "resumecoach",
	Short: "AI resume coach",
	Long: `resumecoach compares a resume with a job description, folds in current
job market trends and asks a language model for tailored feedback.
It also answers questions over a folder of resumes and serves an HTTP API.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("resumecoach version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads .env and the environment. validate additionally checks
// the model credentials, which commands that never call the model skip.
func loadConfig(validate bool) (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

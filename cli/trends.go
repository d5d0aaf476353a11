package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resumecoach/backend/trends"
)

var trendsJSON bool

// newFetcher is replaced in tests to avoid live searches
var newFetcher = trends.New

var trendsCmd = &cobra.Command{
	Use:   "trends [query]",
	Short: "Fetch current job market trends",
	Long: `Searches the web for the query and prints up to five result snippets.
Without a query the DEFAULT_TREND_QUERY setting is used.`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().BoolVar(&trendsJSON, "json", false, "output trends as JSON")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		query = cfg.DefaultTrendQuery
	}

	result := trends.Resolve(context.Background(), newFetcher(cfg), query)

	if trendsJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal trends: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Trends for %q:\n", query)
	for _, snippet := range result.Trends {
		cmd.Printf("- %s\n", snippet)
	}
	if result.Degraded && result.Reason != "" {
		cmd.Printf("(%s)\n", result.Reason)
	}
	return nil
}

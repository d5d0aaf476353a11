package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/models"
)

var sectionsJSON bool

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "Extract resume sections from a file",
	Long: `Reads a PDF or text file and splits it into education, experience and
skills sections by heading keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output sections as JSON")
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	text, err := document.NewExtractor().ExtractFile(args[0])
	if err != nil {
		return err
	}

	sections := document.ExtractSections(text)
	if sectionsJSON {
		data, err := json.MarshalIndent(sections, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sections: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printSections(cmd, sections)
	return nil
}

func printSections(cmd *cobra.Command, sections models.SectionMap) {
	labels := sections.Labels()
	if len(labels) == 0 {
		cmd.Println("No sections found.")
		return
	}
	for _, label := range labels {
		cmd.Printf("== %s ==\n%s\n\n", label, sections[label])
	}
}

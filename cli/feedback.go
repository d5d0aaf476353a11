package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resumecoach/backend/coach"
	"github.com/resumecoach/backend/models"
)

var (
	feedbackResume     string
	feedbackJD         string
	feedbackJDText     string
	feedbackMode       string
	feedbackTrendQuery string
	feedbackFocus      bool
	feedbackJSON       bool
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Get feedback on a resume for a job description",
	Long: `Compares a resume with a job description, fetches current market trends
and asks the model for concise tips or a detailed rewrite.`,
	Args: cobra.NoArgs,
	RunE: runFeedback,
}

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackResume, "resume", "r", "", "resume file (PDF or TXT)")
	feedbackCmd.Flags().StringVarP(&feedbackJD, "jd", "j", "", "job description file (PDF or TXT)")
	feedbackCmd.Flags().StringVar(&feedbackJDText, "jd-text", "", "job description text")
	feedbackCmd.Flags().StringVarP(&feedbackMode, "mode", "m", "concise", "feedback mode: concise or detailed")
	feedbackCmd.Flags().StringVar(&feedbackTrendQuery, "trend-query", "", "market trend search query")
	feedbackCmd.Flags().BoolVar(&feedbackFocus, "focus", false, "append the resume passages most relevant to the job")
	feedbackCmd.Flags().BoolVar(&feedbackJSON, "json", false, "output the full result as JSON")
	_ = feedbackCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	mode, ok := models.ParseFeedbackMode(feedbackMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (use concise or detailed)", feedbackMode)
	}
	if feedbackJD == "" && feedbackJDText == "" {
		return errors.New("either --jd or --jd-text is required")
	}

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	ctx := context.Background()
	app, err := appFactory(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	resume, err := app.Extractor.ExtractFile(feedbackResume)
	if err != nil {
		return err
	}
	jd := feedbackJDText
	if feedbackJD != "" {
		if jd, err = app.Extractor.ExtractFile(feedbackJD); err != nil {
			return err
		}
	}

	output, err := app.Coach.Feedback(ctx, coach.FeedbackInput{
		ResumeText: resume,
		JDText:     jd,
		Mode:       mode,
		TrendQuery: feedbackTrendQuery,
		Focus:      feedbackFocus,
	})
	if err != nil {
		return fmt.Errorf("failed to get feedback: %w", err)
	}

	if feedbackJSON {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal feedback: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Job description sections:")
	printSections(cmd, output.JDSections)
	cmd.Println("Resume sections:")
	printSections(cmd, output.ResumeSections)
	cmd.Println("Market trends:")
	for _, snippet := range output.Trends {
		cmd.Printf("- %s\n", snippet)
	}
	cmd.Printf("\n%s:\n%s\n", output.Mode, output.Feedback)
	return nil
}

package coach

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/llm"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/retrieval"
	"github.com/resumecoach/backend/trends"
)

// DefaultTrendQuery is used when the caller does not supply one
const DefaultTrendQuery = "top skills for AI engineering roles in 2025"

// Coach compares a resume against a job description and asks the model for feedback
type Coach struct {
	generator  llm.Generator
	trends     trends.Fetcher
	retriever  *retrieval.Retriever
	chunker    *document.Chunker
	prompts    *llm.Prompts
	trendQuery string
}

// Option configures a Coach
type Option func(*Coach)

// WithRetriever enables focused feedback using the given retriever and chunker
func WithRetriever(r *retrieval.Retriever, chunker *document.Chunker) Option {
	return func(c *Coach) {
		c.retriever = r
		c.chunker = chunker
	}
}

// WithPrompts overrides the prompt templates
func WithPrompts(p *llm.Prompts) Option {
	return func(c *Coach) {
		c.prompts = p
	}
}

// WithDefaultTrendQuery overrides the trend query used when a request has none
func WithDefaultTrendQuery(q string) Option {
	return func(c *Coach) {
		if q != "" {
			c.trendQuery = q
		}
	}
}

// NewCoach creates a coach
func NewCoach(gen llm.Generator, fetcher trends.Fetcher, opts ...Option) *Coach {
	c := &Coach{
		generator:  gen,
		trends:     fetcher,
		prompts:    llm.DefaultPrompts(),
		trendQuery: DefaultTrendQuery,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FeedbackInput is a single coaching request
type FeedbackInput struct {
	ResumeText string
	JDText     string
	Mode       models.FeedbackMode
	TrendQuery string

	// Focus appends the resume passages most similar to the job description
	Focus bool
}

// FeedbackOutput is the result of a coaching request
type FeedbackOutput struct {
	JDSections     models.SectionMap
	ResumeSections models.SectionMap
	Trends         []string
	TrendsDegraded bool
	TrendsError    string
	Mode           models.FeedbackMode
	Feedback       string
}

// Feedback extracts sections, fetches market trends and makes exactly one
// generator call with the resume and job description embedded verbatim.
// Trend failures degrade to the fallback list; generator failures are returned.
func (c *Coach) Feedback(ctx context.Context, input FeedbackInput) (*FeedbackOutput, error) {
	if strings.TrimSpace(input.ResumeText) == "" {
		return nil, apperr.Newf(apperr.KindInvalidInput, "coach.feedback", "resume text is required")
	}
	if strings.TrimSpace(input.JDText) == "" {
		return nil, apperr.Newf(apperr.KindInvalidInput, "coach.feedback", "job description text is required")
	}
	if input.Mode == "" {
		input.Mode = models.ModeConciseTips
	}
	if input.TrendQuery == "" {
		input.TrendQuery = c.trendQuery
	}

	output := &FeedbackOutput{
		ResumeSections: document.ExtractSections(input.ResumeText),
		JDSections:     document.ExtractSections(input.JDText),
		Mode:           input.Mode,
	}
	log.Printf("[Coach] Sections extracted: resume=%v jd=%v", output.ResumeSections.Labels(), output.JDSections.Labels())

	trendResult := trends.Resolve(ctx, c.trends, input.TrendQuery)
	output.Trends = trendResult.Trends
	output.TrendsDegraded = trendResult.Degraded
	output.TrendsError = trendResult.Reason

	prompt := c.prompts.FormatCoach(input.ResumeText, input.JDText, output.Trends, input.Mode)

	if input.Focus {
		passages, err := c.relevantPassages(ctx, input.ResumeText, input.JDText)
		if err != nil {
			log.Printf("[Coach] Skipping focused passages: %v", err)
		} else if len(passages) > 0 {
			prompt += c.prompts.FormatFocus(passages)
		}
	}

	log.Printf("[Coach] Requesting %q feedback from %s", input.Mode, c.generator.ModelName())
	feedback, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}
	output.Feedback = strings.TrimSpace(feedback)

	return output, nil
}

func (c *Coach) relevantPassages(ctx context.Context, resume, jd string) ([]string, error) {
	if c.retriever == nil || c.chunker == nil {
		return nil, apperr.Newf(apperr.KindConfig, "coach.focus", "no retriever configured")
	}

	embedded, err := c.retriever.Embed(ctx, c.chunker.Split(resume, "resume"))
	if err != nil {
		return nil, err
	}

	hits, err := c.retriever.Search(ctx, jd, embedded)
	if err != nil {
		return nil, err
	}

	passages := make([]string, len(hits))
	for i, hit := range hits {
		passages[i] = hit.Text
	}
	return passages, nil
}

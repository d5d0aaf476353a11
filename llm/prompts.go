package llm

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/models"
)

// Default templates. Placeholders are substituted in a single pass, so
// braces inside user text are never expanded.
const (
	DefaultAnswerTemplate = "Context:\n{context}\n\nQuestion: {query}\nAnswer:"

	DefaultCoachTemplate = "Compare the following resume and job description. Identify missing skills, suggest improvements, and incorporate current market trends.\n\nResume:\n{resume}\n\nJob Description:\n{jd}\n\nCurrent Market Trends:\n{trends}"

	DefaultConciseInstruction  = "\n\nGive concise bullet-point tips."
	DefaultDetailedInstruction = "\n\nRewrite the resume summary and experience sections in detail."

	DefaultFocusTemplate = "\n\nMost relevant resume passages for this job:\n{passages}"

	DefaultChatSystemPrompt = "You are a helpful career coach. Give clear, practical answers about resumes, job applications and skills."
)

// Prompts holds the templates used to talk to the model
type Prompts struct {
	Answer              string `yaml:"answer"`
	Coach               string `yaml:"coach"`
	ConciseInstruction  string `yaml:"concise_instruction"`
	DetailedInstruction string `yaml:"detailed_instruction"`
	Focus               string `yaml:"focus"`
	ChatSystem          string `yaml:"chat_system"`
}

// DefaultPrompts returns the built-in templates
func DefaultPrompts() *Prompts {
	return &Prompts{
		Answer:              DefaultAnswerTemplate,
		Coach:               DefaultCoachTemplate,
		ConciseInstruction:  DefaultConciseInstruction,
		DetailedInstruction: DefaultDetailedInstruction,
		Focus:               DefaultFocusTemplate,
		ChatSystem:          DefaultChatSystemPrompt,
	}
}

// LoadPrompts reads a YAML file and overlays its non-empty fields on the
// defaults. An empty path returns the defaults.
func LoadPrompts(path string) (*Prompts, error) {
	prompts := DefaultPrompts()
	if path == "" {
		return prompts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New(apperr.KindConfig, "llm.prompts", fmt.Errorf("failed to read prompts file: %w", err))
	}

	var override Prompts
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, apperr.New(apperr.KindConfig, "llm.prompts", fmt.Errorf("failed to parse prompts file: %w", err))
	}

	overlay(&prompts.Answer, override.Answer)
	overlay(&prompts.Coach, override.Coach)
	overlay(&prompts.ConciseInstruction, override.ConciseInstruction)
	overlay(&prompts.DetailedInstruction, override.DetailedInstruction)
	overlay(&prompts.Focus, override.Focus)
	overlay(&prompts.ChatSystem, override.ChatSystem)

	return prompts, nil
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// FormatAnswer fills the answer template; contexts are joined by newlines
func (p *Prompts) FormatAnswer(contexts []string, query string) string {
	return strings.NewReplacer(
		"{context}", strings.Join(contexts, "\n"),
		"{query}", query,
	).Replace(p.Answer)
}

// FormatCoach fills the comparison template and appends the mode instruction
func (p *Prompts) FormatCoach(resume, jd string, trends []string, mode models.FeedbackMode) string {
	prompt := strings.NewReplacer(
		"{resume}", resume,
		"{jd}", jd,
		"{trends}", strings.Join(trends, "\n"),
	).Replace(p.Coach)

	switch mode {
	case models.ModeDetailedRewrite:
		prompt += p.DetailedInstruction
	default:
		prompt += p.ConciseInstruction
	}
	return prompt
}

// FormatFocus renders retrieved resume passages for appending to a coaching prompt
func (p *Prompts) FormatFocus(passages []string) string {
	return strings.ReplaceAll(p.Focus, "{passages}", strings.Join(passages, "\n---\n"))
}

// FormatPrompt fills the default answer template
func FormatPrompt(contexts []string, query string) string {
	return DefaultPrompts().FormatAnswer(contexts, query)
}

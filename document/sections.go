package document

import (
	"strings"

	"github.com/resumecoach/backend/models"
)

// headingLabel maps a lower-cased, trimmed line to a section label.
// education is checked first, then experience, then skills, so a line such
// as "education and skills" counts as education.
func headingLabel(line string) (string, bool) {
	switch {
	case strings.Contains(line, "education"):
		return models.SectionEducation, true
	case strings.Contains(line, "experience"), strings.Contains(line, "work history"):
		return models.SectionExperience, true
	case strings.Contains(line, "skills"):
		return models.SectionSkills, true
	default:
		return "", false
	}
}

// ExtractSections splits text into education, experience and skills sections
// by keyword headings. A heading line starts a fresh section (a repeated
// heading replaces the earlier content) and is not itself content. Lines
// before the first heading are dropped.
func ExtractSections(text string) models.SectionMap {
	sections := models.SectionMap{}

	var current string
	var lines []string
	flush := func() {
		if current != "" {
			sections[current] = strings.Join(lines, "\n")
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if label, ok := headingLabel(strings.ToLower(line)); ok {
			flush()
			current = label
			lines = []string{}
			continue
		}
		if current != "" {
			lines = append(lines, line)
		}
	}
	flush()

	return sections
}

package models

// Chunk is a contiguous window of whitespace-separated tokens from one document
type Chunk struct {
	Index  int    `json:"index" example:"0"`
	Text   string `json:"text" example:"Experienced Go engineer with a focus on distributed systems"`
	Source string `json:"source,omitempty" example:"resume.pdf"`
}

// EmbeddedChunk pairs a chunk with its embedding vector
type EmbeddedChunk struct {
	Chunk
	Vector []float32 `json:"-"`
}

// ScoredChunk is a retrieval hit
type ScoredChunk struct {
	Chunk
	Score float64 `json:"score" example:"0.82"`
}

// Section labels recognised in resumes and job descriptions
const (
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSkills     = "skills"
)

// SectionLabels lists section labels in rendering order
var SectionLabels = []string{SectionEducation, SectionExperience, SectionSkills}

// SectionMap maps a section label to the newline-joined content lines under it.
// Labels whose heading never appeared are absent.
type SectionMap map[string]string

// Labels returns the labels present in m in rendering order
func (m SectionMap) Labels() []string {
	labels := make([]string, 0, len(m))
	for _, label := range SectionLabels {
		if _, ok := m[label]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}

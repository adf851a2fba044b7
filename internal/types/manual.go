package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var manualValidate = validator.New()

// ManualResumeInput is a resume submitted field-by-field instead of as an
// uploaded document.
type ManualResumeInput struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=40"`
	LinkedIn string `json:"linkedin" validate:"omitempty,max=200"`
	Location string `json:"location" validate:"omitempty,max=120"`
	Website  string `json:"website" validate:"omitempty,max=200"`

	Summary string `json:"summary" validate:"omitempty,max=2000"`

	TechnicalSkills []string `json:"technical_skills" validate:"omitempty,dive,min=1,max=80"`
	SoftSkills      []string `json:"soft_skills" validate:"omitempty,dive,min=1,max=80"`
	Certifications  []string `json:"certifications" validate:"omitempty,dive,min=1,max=200"`

	Education  []EducationEntry  `json:"education" validate:"omitempty,dive"`
	Experience []ExperienceEntry `json:"experience" validate:"omitempty,dive"`
	Projects   []ProjectEntry    `json:"projects" validate:"omitempty,dive"`
}

// Validate checks the input against its declared constraints.
func (m *ManualResumeInput) Validate() error {
	if err := manualValidate.Struct(m); err != nil {
		return fmt.Errorf("invalid manual resume input: %w", err)
	}
	return nil
}

// ToRecord assembles a ResumeRecord from the discrete fields, synthesizing
// the free-text section blocks in the canonical formats the rest of the
// pipeline expects.
func (m *ManualResumeInput) ToRecord() *ResumeRecord {
	skills := make([]string, 0, len(m.TechnicalSkills)+len(m.SoftSkills))
	for _, s := range append(append([]string{}, m.TechnicalSkills...), m.SoftSkills...) {
		if t := strings.TrimSpace(s); t != "" {
			skills = append(skills, t)
		}
	}
	certs := make([]string, 0, len(m.Certifications))
	for _, c := range m.Certifications {
		if t := strings.TrimSpace(c); t != "" {
			certs = append(certs, t)
		}
	}

	rec := &ResumeRecord{
		Name:              strings.TrimSpace(m.Name),
		Email:             strings.TrimSpace(m.Email),
		Phone:             strings.TrimSpace(m.Phone),
		LinkedIn:          strings.TrimSpace(m.LinkedIn),
		Website:           strings.TrimSpace(m.Website),
		Location:          strings.TrimSpace(m.Location),
		Summary:           strings.TrimSpace(m.Summary),
		Skills:            DedupeFold(skills, MaxSkills),
		Certifications:    DedupeFold(certs, MaxSkills),
		EducationEntries:  m.Education,
		ExperienceEntries: m.Experience,
		ProjectEntries:    m.Projects,
		EducationText:     renderEducationEntries(m.Education),
		ExperienceText:    renderManualExperience(m.Experience),
		ProjectsText:      renderProjectEntries(m.Projects),
	}
	rec.RecomputeFullText()
	return rec
}

// renderEducationEntries formats "degree | institution | year | GPA g", one
// entry per line, skipping entries without a degree.
func renderEducationEntries(entries []EducationEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Degree == "" {
			continue
		}
		p := e.Degree
		if e.Institution != "" {
			p += " | " + e.Institution
		}
		if e.Year != "" {
			p += " | " + e.Year
		}
		if e.GPA != "" {
			p += " | GPA " + e.GPA
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n")
}

// renderManualExperience formats "title at company (duration)" with the
// responsibilities block underneath, blank line between entries. Entries
// without a title are dropped.
func renderManualExperience(entries []ExperienceEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Title == "" {
			continue
		}
		p := fmt.Sprintf("%s at %s (%s)", e.Title, e.Company, e.Duration)
		if len(e.Responsibilities) > 0 {
			p += "\n" + strings.Join(e.Responsibilities, "\n")
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n\n")
}

// renderProjectEntries formats "name | Tech: tech" with the description
// underneath, blank line between entries.
func renderProjectEntries(entries []ProjectEntry) string {
	parts := make([]string, 0, len(entries))
	for _, p := range entries {
		if p.Name == "" {
			continue
		}
		s := p.Name
		if p.Tech != "" {
			s += " | Tech: " + p.Tech
		}
		if p.Description != "" {
			s += "\n" + p.Description
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n")
}

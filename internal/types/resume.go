// Package types defines the shared data model for resume parsing, scoring,
// enhancement, and rendering.
package types

import (
	"strings"
)

// MaxSkills is the hard cap on skills and certifications after any expansion.
const MaxSkills = 25

// ResumeRecord is the normalized structured resume document produced by
// extraction or manual entry. Absent fields are empty strings, never nulls;
// an empty string and a missing field mean the same thing.
type ResumeRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Location string `json:"location"`

	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`

	EducationText  string `json:"education_text"`
	ExperienceText string `json:"experience_text"`
	ProjectsText   string `json:"projects_text"`

	EducationEntries  []EducationEntry  `json:"education_entries,omitempty"`
	ExperienceEntries []ExperienceEntry `json:"experience_entries,omitempty"`
	ProjectEntries    []ProjectEntry    `json:"project_entries,omitempty"`

	// FullText is derived from the other fields. It is recomputed by
	// RecomputeFullText and must never be edited independently.
	FullText string `json:"full_text"`
}

// ExperienceEntry is one structured job entry.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationEntry is one structured education entry.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// ProjectEntry is one structured project entry.
type ProjectEntry struct {
	Name        string `json:"name"`
	Tech        string `json:"tech"`
	Link        string `json:"link,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description"`
}

// Clone returns a deep copy of the record. Enhancement always works on a
// clone so the original stays available for before/after comparison.
func (r *ResumeRecord) Clone() *ResumeRecord {
	c := *r
	c.Skills = append([]string(nil), r.Skills...)
	c.Certifications = append([]string(nil), r.Certifications...)
	if r.EducationEntries != nil {
		c.EducationEntries = append([]EducationEntry(nil), r.EducationEntries...)
	}
	if r.ExperienceEntries != nil {
		c.ExperienceEntries = make([]ExperienceEntry, len(r.ExperienceEntries))
		for i, e := range r.ExperienceEntries {
			e.Responsibilities = append([]string(nil), e.Responsibilities...)
			c.ExperienceEntries[i] = e
		}
	}
	if r.ProjectEntries != nil {
		c.ProjectEntries = append([]ProjectEntry(nil), r.ProjectEntries...)
	}
	return &c
}

// RecomputeFullText rebuilds the derived FullText field from every populated
// source field. Call it after any mutation of the record.
func (r *ResumeRecord) RecomputeFullText() {
	parts := make([]string, 0, 16)
	for _, s := range []string{r.Name, r.Email, r.Summary, r.ExperienceText, r.EducationText, r.ProjectsText} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(r.Skills) > 0 {
		parts = append(parts, strings.Join(r.Skills, ", "))
	}
	if len(r.Certifications) > 0 {
		parts = append(parts, strings.Join(r.Certifications, ", "))
	}
	for _, e := range r.ExperienceEntries {
		if e.Title != "" {
			parts = append(parts, e.Title)
		}
		if e.Company != "" {
			parts = append(parts, e.Company)
		}
		parts = append(parts, e.Responsibilities...)
	}
	for _, p := range r.ProjectEntries {
		for _, s := range []string{p.Name, p.Tech, p.Description} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	r.FullText = strings.Join(parts, " ")
}

// HasSummary reports whether the summary field is present.
func (r *ResumeRecord) HasSummary() bool { return strings.TrimSpace(r.Summary) != "" }

// HasSkills reports whether at least one non-empty skill is present.
func (r *ResumeRecord) HasSkills() bool { return anyNonEmpty(r.Skills) }

// HasExperience reports whether experience is present in either the free-text
// or the structured representation.
func (r *ResumeRecord) HasExperience() bool {
	if strings.TrimSpace(r.ExperienceText) != "" {
		return true
	}
	for _, e := range r.ExperienceEntries {
		if e.Title != "" || e.Company != "" || e.Duration != "" || anyNonEmpty(e.Responsibilities) {
			return true
		}
	}
	return false
}

// HasEducation reports whether education is present in either representation.
func (r *ResumeRecord) HasEducation() bool {
	if strings.TrimSpace(r.EducationText) != "" {
		return true
	}
	for _, e := range r.EducationEntries {
		if e.Degree != "" || e.Institution != "" || e.Year != "" || e.GPA != "" {
			return true
		}
	}
	return false
}

// PlainText renders the record as a plain-text resume reconstruction, used
// when an external service needs document bytes and no original upload is
// available.
func (r *ResumeRecord) PlainText() string {
	parts := make([]string, 0, 10)
	for _, s := range []string{r.Name, r.Email, r.Phone, r.LinkedIn, r.Location, r.Summary} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(r.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(r.Skills, ", "))
	}
	for _, s := range []string{r.ExperienceText, r.EducationText, r.ProjectsText} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// MergeMissing fills every empty field of the record from the original, so an
// enhanced record is always complete even when the enhancement path only
// touched a subset of fields.
func (r *ResumeRecord) MergeMissing(original *ResumeRecord) {
	if original == nil {
		return
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&r.Name, original.Name)
	fill(&r.Email, original.Email)
	fill(&r.Phone, original.Phone)
	fill(&r.LinkedIn, original.LinkedIn)
	fill(&r.GitHub, original.GitHub)
	fill(&r.Website, original.Website)
	fill(&r.Location, original.Location)
	fill(&r.Summary, original.Summary)
	fill(&r.EducationText, original.EducationText)
	fill(&r.ExperienceText, original.ExperienceText)
	fill(&r.ProjectsText, original.ProjectsText)
	if len(r.Skills) == 0 {
		r.Skills = append([]string(nil), original.Skills...)
	}
	if len(r.Certifications) == 0 {
		r.Certifications = append([]string(nil), original.Certifications...)
	}
	if len(r.EducationEntries) == 0 {
		r.EducationEntries = append([]EducationEntry(nil), original.EducationEntries...)
	}
	if len(r.ExperienceEntries) == 0 {
		r.ExperienceEntries = append([]ExperienceEntry(nil), original.ExperienceEntries...)
	}
	if len(r.ProjectEntries) == 0 {
		r.ProjectEntries = append([]ProjectEntry(nil), original.ProjectEntries...)
	}
}

// RenderExperienceEntries renders structured experience entries back into the
// canonical free-text block: one "title | company (duration)" header line per
// entry (company omitted when absent), bullet-prefixed responsibilities,
// blank line between entries.
func RenderExperienceEntries(entries []ExperienceEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		header := e.Title + " (" + e.Duration + ")"
		if e.Company != "" {
			header = e.Title + " | " + e.Company + " (" + e.Duration + ")"
		}
		lines := []string{header}
		for _, resp := range e.Responsibilities {
			if strings.TrimSpace(resp) == "" {
				continue
			}
			lines = append(lines, "• "+strings.TrimLeft(resp, "• "))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// DedupeFold removes case-insensitive duplicates from items, preserving the
// first-seen surface form and insertion order, and caps the result at max
// entries (max <= 0 means no cap).
func DedupeFold(items []string, max int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

func anyNonEmpty(items []string) bool {
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

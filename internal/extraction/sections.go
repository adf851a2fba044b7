package extraction

import (
	"strings"
)

// Canonical section types.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// sectionTaxonomy maps each canonical section to the heading keywords that
// identify it. Order matters: plain-mode assignment walks the taxonomy in
// this order.
var sectionTaxonomy = []struct {
	Type     string
	Keywords []string
}{
	{SectionSummary, []string{"summary", "objective", "profile", "about", "overview", "professional summary"}},
	{SectionExperience, []string{"experience", "employment", "work history", "work experience", "career"}},
	{SectionEducation, []string{"education", "academic", "qualification", "degree"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "expertise", "technologies", "skills & expertise"}},
	{SectionProjects, []string{"projects", "portfolio", "achievements", "projects & achievements"}},
	{SectionCertifications, []string{"certifications", "certificates", "licenses", "credentials"}},
}

var allSectionKeywords = func() map[string]bool {
	m := make(map[string]bool)
	for _, entry := range sectionTaxonomy {
		for _, kw := range entry.Keywords {
			m[kw] = true
		}
	}
	return m
}()

// Section is a contiguous block of lines under one heading. Name is the
// lowercased heading text, or "header" for content before the first heading.
type Section struct {
	Name  string
	Lines []string
}

// SplitSections segments the document's non-empty lines into heading-keyed
// sections, preserving document order. A line is a heading when it exactly
// matches a taxonomy keyword, is an all-caps short line of two to five
// words, or is a short line ending in a colon.
func SplitSections(lines []string) []Section {
	sections := []Section{}
	current := Section{Name: "header"}
	for _, line := range lines {
		if isSectionHeader(line) {
			sections = append(sections, current)
			current = Section{Name: strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ":")}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	return append(sections, current)
}

func isSectionHeader(line string) bool {
	ll := strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ":")
	if allSectionKeywords[ll] {
		return true
	}
	if isUpperLine(line) {
		if n := len(strings.Fields(line)); n > 1 && n <= 5 {
			return true
		}
	}
	if strings.HasSuffix(line, ":") && len(line) < 40 {
		return true
	}
	return false
}

// ClassifySection maps a heading's text to its canonical section type by
// substring match, falling back to the lowercased heading itself for
// headings outside the taxonomy.
func ClassifySection(heading string) string {
	ht := strings.ToLower(strings.TrimSpace(heading))
	for _, entry := range sectionTaxonomy {
		for _, kw := range entry.Keywords {
			if strings.Contains(ht, kw) {
				return entry.Type
			}
		}
	}
	return ht
}

package extraction

import (
	"log"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// FromText extracts a ResumeRecord from plain document text. It never fails:
// fields that no heuristic can fill stay empty.
func FromText(text string) *types.ResumeRecord {
	rec := &types.ResumeRecord{Skills: []string{}, Certifications: []string{}}

	lines := nonEmptyLines(text)

	ExtractContact(text, rec)
	rec.Name = ResolveName(lines)

	sections := SplitSections(lines)
	for _, entry := range sectionTaxonomy {
		for _, sec := range sections {
			if !sectionNameMatches(sec.Name, entry.Keywords) {
				continue
			}
			body := strings.TrimSpace(strings.Join(sec.Lines, "\n"))
			assignSection(rec, entry.Type, body)
		}
	}

	if len(rec.Skills) == 0 {
		rec.Skills = FallbackSkills(text)
	}
	rec.Skills = types.DedupeFold(rec.Skills, types.MaxSkills)
	rec.Certifications = types.DedupeFold(rec.Certifications, types.MaxSkills)

	rec.RecomputeFullText()
	log.Printf("[extract] parsed text resume: name=%q sections filled=%d skills=%d",
		rec.Name, countFilledSections(rec), len(rec.Skills))
	return rec
}

func assignSection(rec *types.ResumeRecord, sectionType, body string) {
	switch sectionType {
	case SectionSummary:
		rec.Summary = body
	case SectionExperience:
		rec.ExperienceText = body
	case SectionEducation:
		rec.EducationText = body
	case SectionProjects:
		rec.ProjectsText = body
	case SectionSkills:
		rec.Skills = ParseSkillList(body)
	case SectionCertifications:
		rec.Certifications = nonEmptyLines(body)
	}
}

func sectionNameMatches(name string, keywords []string) bool {
	nl := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(nl, kw) {
			return true
		}
	}
	return false
}

func nonEmptyLines(text string) []string {
	lines := []string{}
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

func countFilledSections(rec *types.ResumeRecord) int {
	n := 0
	for _, s := range []string{rec.Summary, rec.ExperienceText, rec.EducationText, rec.ProjectsText} {
		if s != "" {
			n++
		}
	}
	return n
}

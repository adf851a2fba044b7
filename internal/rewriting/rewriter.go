package rewriting

import (
	"log"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// Enhance rewrites every enhanceable part of the record with the rule
// tables: summary template, bullet openers, skill expansion. The input is
// never mutated; the returned record has a freshly derived full text.
func Enhance(rec *types.ResumeRecord, targetRole, jobDescription string) *types.ResumeRecord {
	enhanced := rec.Clone()

	enhanced.Summary = RewriteSummary(rec.Summary, rec.Skills, rec.ExperienceText, targetRole)

	if rec.ExperienceText != "" {
		enhanced.ExperienceText = RewriteBullets(rec.ExperienceText)
	}

	if len(rec.ExperienceEntries) > 0 {
		entries := make([]types.ExperienceEntry, len(rec.ExperienceEntries))
		for i, e := range rec.ExperienceEntries {
			entry := e
			if len(e.Responsibilities) > 0 {
				rewritten := RewriteBullets(strings.Join(e.Responsibilities, "\n"))
				entry.Responsibilities = strings.Split(rewritten, "\n")
			}
			entries[i] = entry
		}
		enhanced.ExperienceEntries = entries
		enhanced.ExperienceText = types.RenderExperienceEntries(entries)
	}

	if rec.ProjectsText != "" {
		enhanced.ProjectsText = RewriteBullets(rec.ProjectsText)
	}

	enhanced.Skills = ExpandSkills(rec.Skills, targetRole)

	enhanced.RecomputeFullText()
	log.Printf("[rewrite] rule-based enhancement done: skills %d -> %d", len(rec.Skills), len(enhanced.Skills))
	return enhanced
}

package rewriting

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	yearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*year`)
	digitRe = regexp.MustCompile(`\d+`)
)

// RewriteSummary produces a fixed-template summary: inferred role, years of
// experience lifted from the original summary, the top five skills, and an
// impact line pulled from the experience text when one qualifies.
func RewriteSummary(original string, skills []string, experienceText, targetRole string) string {
	skillsStr := "modern technologies"
	if len(skills) > 0 {
		top := skills
		if len(top) > 5 {
			top = top[:5]
		}
		skillsStr = strings.Join(top, ", ")
	}

	role := targetRole
	if role == "" {
		role = InferRole(experienceText, skills)
	}

	yearsStr := ""
	if m := yearsRe.FindStringSubmatch(original); m != nil {
		yearsStr = m[1] + "+ years of "
	}

	impactSentence := ""
	if impact := extractImpact(experienceText); impact != "" {
		impactSentence = " " + impact
	}

	return fmt.Sprintf(
		"Results-driven %s with %shands-on expertise in %s. "+
			"Proven ability to design and deliver scalable, high-quality solutions that drive measurable impact.%s "+
			"Thrives in collaborative environments with a strong focus on engineering excellence, continuous learning, and innovation.",
		role, yearsStr, skillsStr, impactSentence)
}

// InferRole guesses a role title from the experience text and skills, most
// specific signal first.
func InferRole(experienceText string, skills []string) string {
	text := strings.ToLower(experienceText + " " + strings.Join(skills, " "))
	switch {
	case strings.Contains(text, "flutter"):
		return "Flutter Developer"
	case strings.Contains(text, "machine learning") || strings.Contains(text, "aiml"):
		return "AI/ML Engineer"
	case strings.Contains(text, "react") || strings.Contains(text, "frontend"):
		return "Frontend Developer"
	case strings.Contains(text, "node") || strings.Contains(text, "backend"):
		return "Backend Developer"
	case strings.Contains(text, "python"):
		return "Python Developer"
	default:
		return "Software Developer"
	}
}

// extractImpact returns the first experience line that carries a number and
// is short enough to read as a single achievement sentence.
func extractImpact(experienceText string) string {
	for _, line := range strings.Split(experienceText, "\n") {
		if digitRe.MatchString(line) && len(line) > 20 && len(line) < 120 {
			return strings.TrimLeft(strings.TrimSpace(line), "•-* ")
		}
	}
	return ""
}

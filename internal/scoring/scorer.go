package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// Sub-score weights for the overall score.
const (
	weightSection = 0.25
	weightKeyword = 0.30
	weightContent = 0.25
	weightFormat  = 0.20
)

// ScoreBuiltin computes the deterministic built-in report from the record,
// the raw document text, and an optional job description. It is pure: the
// same inputs always produce the same report.
func ScoreBuiltin(rec *types.ResumeRecord, rawText, jobDescription string) *types.ScoreReport {
	full := scoringText(rec, rawText)
	fullLower := strings.ToLower(full)

	secScore, secSg := sectionScore(rec)
	kwScore, kwSg, missing := keywordScore(fullLower, jobDescription)
	conScore, conSg := contentScore(fullLower, rec)
	fmtScore, fmtSg := formatScore(rec, full)

	overall := secScore*weightSection + kwScore*weightKeyword + conScore*weightContent + fmtScore*weightFormat
	if jobDescription != "" {
		overall = math.Min(100, overall+jdMatch(fullLower, jobDescription)*10)
	}

	report := &types.ScoreReport{
		Overall:                int(math.Round(overall)),
		Keyword:                int(math.Round(kwScore)),
		Format:                 int(math.Round(fmtScore)),
		Content:                int(math.Round(conScore)),
		Section:                int(math.Round(secScore)),
		Suggestions:            concatAll(secSg, kwSg, conSg, fmtSg),
		MissingKeywords:        missing,
		PowerVerbCount:         countPresent(PowerVerbs, fullLower),
		QuantifiedAchievements: countQuantifiers(full),
		Source:                 types.SourceBuiltin,
	}
	report.Truncate()
	return report
}

// scoringText concatenates the raw document text with every populated record
// field so late-pipeline additions (rewritten bullets, expanded skills) are
// visible to the catalogs.
func scoringText(rec *types.ResumeRecord, rawText string) string {
	parts := []string{rawText}
	for _, s := range []string{rec.Summary, rec.ExperienceText, rec.EducationText, rec.ProjectsText} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(rec.Skills) > 0 {
		parts = append(parts, strings.Join(rec.Skills, " "))
	}
	if len(rec.Certifications) > 0 {
		parts = append(parts, strings.Join(rec.Certifications, " "))
	}
	for _, e := range rec.ExperienceEntries {
		for _, s := range []string{e.Title, e.Company, strings.Join(e.Responsibilities, " ")} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	for _, p := range rec.ProjectEntries {
		for _, s := range []string{p.Name, p.Tech, p.Description} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// sectionScore awards fixed points per present section, capped at 100.
func sectionScore(rec *types.ResumeRecord) (float64, []string) {
	score := 0.0
	suggestions := []string{}
	for _, check := range []struct {
		present bool
		points  float64
		msg     string
	}{
		{rec.Name != "", 10, "Add your full name"},
		{rec.Email != "", 10, "Add a professional email"},
		{rec.Phone != "", 8, "Add your phone number"},
		{rec.HasSummary(), 15, "Add a professional summary"},
		{rec.HasSkills(), 20, "Add a dedicated skills section"},
		{rec.HasExperience(), 20, "Add work experience"},
		{rec.HasEducation(), 17, "Add your education"},
	} {
		if check.present {
			score += check.points
		} else {
			suggestions = append(suggestions, check.msg)
		}
	}
	return math.Min(100, score), suggestions
}

// keywordScore blends catalog coverage: technical keywords (up to 50), soft
// skills (up to 20), and power verbs (up to 30), plus job-description gap
// analysis when a JD is present.
func keywordScore(textLower, jobDescription string) (float64, []string, []string) {
	score := 0.0
	suggestions := []string{}
	missing := []string{}

	foundTech := findPresent(TechnicalKeywords, textLower)
	score += math.Min(50, float64(len(foundTech))/float64(len(TechnicalKeywords))*100)
	if len(foundTech) < 5 {
		suggestions = append(suggestions, "Add more technical skills relevant to your role")
	}

	foundSoft := findPresent(SoftSkills, textLower)
	score += math.Min(20, float64(len(foundSoft))/float64(len(SoftSkills))*100)
	if len(foundSoft) < 3 {
		suggestions = append(suggestions, "Include soft skills like leadership and communication")
	}

	foundVerbs := findPresent(PowerVerbs, textLower)
	score += math.Min(30, float64(len(foundVerbs))/float64(len(PowerVerbs))*100)
	if len(foundVerbs) < 5 {
		suggestions = append(suggestions, "Use strong action verbs: achieved, led, implemented, optimized")
		missing = append(missing, "achieved", "led", "implemented", "optimized", "developed")
	}

	if jobDescription != "" {
		jdKws := jdKeywords(jobDescription)
		miss := []string{}
		for _, k := range jdKws {
			if !strings.Contains(textLower, strings.ToLower(k)) {
				miss = append(miss, k)
			}
		}
		missing = append(missing, capStrings(miss, 10)...)
		if float64(len(miss))/math.Max(float64(len(jdKws)), 1) > 0.5 {
			suggestions = append(suggestions,
				fmt.Sprintf("Add job-description keywords: %s", strings.Join(capStrings(miss, 5), ", ")))
		}
	}

	return math.Min(100, score), suggestions, missing
}

// contentScore rewards quantified achievements, summary depth, skill count,
// and power-verb usage in tiers.
func contentScore(textLower string, rec *types.ResumeRecord) (float64, []string) {
	score := 0.0
	suggestions := []string{}

	qc := countQuantifiers(textLower)
	switch {
	case qc >= 5:
		score += 30
	case qc >= 3:
		score += 20
		suggestions = append(suggestions, "Add more quantified achievements (%, $, numbers)")
	case qc >= 1:
		score += 10
		suggestions = append(suggestions, "Quantify achievements with metrics")
	default:
		suggestions = append(suggestions, "Add specific numbers to your achievements")
	}

	switch sl := len(rec.Summary); {
	case sl > 100:
		score += 20
	case sl > 50:
		score += 10
		suggestions = append(suggestions, "Expand your summary to 3-4 sentences")
	default:
		suggestions = append(suggestions, "Write a compelling 3-4 sentence professional summary")
	}

	switch n := len(rec.Skills); {
	case n >= 10:
		score += 25
	case n >= 5:
		score += 15
		suggestions = append(suggestions, "Add more skills to strengthen your profile")
	default:
		score += 5
		suggestions = append(suggestions, "List at least 10 relevant skills")
	}

	switch vc := countPresent(PowerVerbs, textLower); {
	case vc >= 8:
		score += 25
	case vc >= 5:
		score += 15
	case vc >= 2:
		score += 8
	default:
		suggestions = append(suggestions, "Start bullet points with strong action verbs")
	}

	return math.Min(100, score), suggestions
}

// formatScore starts at a 60-point baseline and adjusts for contact
// completeness, LinkedIn presence, and overall length.
func formatScore(rec *types.ResumeRecord, full string) (float64, []string) {
	score := 60.0
	suggestions := []string{}

	missingContact := []string{}
	for _, f := range []struct{ name, value string }{
		{"name", rec.Name}, {"email", rec.Email}, {"phone", rec.Phone},
	} {
		if f.value == "" {
			missingContact = append(missingContact, f.name)
		}
	}
	if len(missingContact) > 0 {
		score -= 10 * float64(len(missingContact))
		suggestions = append(suggestions, "Missing contact info: "+strings.Join(missingContact, ", "))
	} else {
		score += 15
	}

	if rec.LinkedIn != "" {
		score += 10
	} else {
		suggestions = append(suggestions, "Add your LinkedIn profile URL")
	}

	switch wc := len(strings.Fields(full)); {
	case wc >= 300 && wc <= 900:
		score += 15
	case wc < 300:
		score -= 10
		suggestions = append(suggestions, "Resume too short — add more detail")
	}

	return math.Min(100, math.Max(0, score)), suggestions
}

// jdKeywords extracts keyword candidates from a job description: catalog
// technical keywords it mentions plus capitalized words of three or more
// letters outside the generic skip list. Order is deterministic, duplicates
// removed.
func jdKeywords(jobDescription string) []string {
	jdLower := strings.ToLower(jobDescription)
	kws := []string{}
	seen := map[string]bool{}
	for _, k := range TechnicalKeywords {
		if strings.Contains(jdLower, k) {
			kws = append(kws, k)
			seen[k] = true
		}
	}
	for _, w := range capitalizedWordRe.FindAllString(jobDescription, -1) {
		if jdSkipWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		kws = append(kws, w)
	}
	return kws
}

// jdMatch returns the fraction of job-description keywords present in the
// resume text.
func jdMatch(textLower, jobDescription string) float64 {
	kws := jdKeywords(jobDescription)
	if len(kws) == 0 {
		return 0
	}
	n := 0
	for _, k := range kws {
		if strings.Contains(textLower, strings.ToLower(k)) {
			n++
		}
	}
	return float64(n) / float64(len(kws))
}

func findPresent(catalog []string, textLower string) []string {
	found := []string{}
	for _, k := range catalog {
		if strings.Contains(textLower, k) {
			found = append(found, k)
		}
	}
	return found
}

func capStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func concatAll(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

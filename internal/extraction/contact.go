// Package extraction turns raw resume text (or styled paragraphs) into a
// structured ResumeRecord using ordered heuristic passes. Every pass is pure:
// failures fall through to the next pass, never to the caller.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`\b[\w._%+-]+@[\w.-]+\.[a-zA-Z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`[+(]?\d[\d\s.\-()]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w\-/]+`)

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)?,\s*(?:India|Maharashtra|[A-Z]{2}))\b`),
		regexp.MustCompile(`\b(Bhayadar|Mumbai|Delhi|Vasai|Thane|Pune|Bangalore|Bengaluru|Hyderabad)\b`),
	}

	nonDigitRe     = regexp.MustCompile(`[^\d]`)
	bareURLRe      = regexp.MustCompile(`https?://\S+`)
	phoneResidueRe = regexp.MustCompile(`\+?\d[\d\s\-()]{6,}`)
	bulletSepRe    = regexp.MustCompile(`[•|,]`)
)

// ExtractContact scans the whole document text and fills the contact fields
// of rec. Fields that no pattern matches are left empty.
func ExtractContact(text string, rec *types.ResumeRecord) {
	if em := emailRe.FindString(text); em != "" {
		rec.Email = em
	}
	if ph := phoneRe.FindString(text); ph != "" {
		if digits := normalizePhone(ph); digits != "" {
			rec.Phone = digits
		}
	}
	if li := linkedinRe.FindString(text); li != "" {
		rec.LinkedIn = li
	}
	if gh := githubRe.FindString(text); gh != "" {
		rec.GitHub = gh
		rec.Website = gh
	}
	for _, pat := range locationPatterns {
		if m := pat.FindString(text); m != "" {
			rec.Location = m
			break
		}
	}
}

// ParseContactLine handles a single dedicated contact line (the subtitle
// paragraph of a styled document). After lifting the structured fields it
// strips their matches plus separator noise; whatever survives longer than
// two characters is taken as the location.
func ParseContactLine(line string, rec *types.ResumeRecord) {
	if em := emailRe.FindString(line); em != "" {
		rec.Email = em
	}
	if ph := phoneRe.FindString(line); ph != "" {
		if digits := normalizePhone(ph); digits != "" {
			rec.Phone = digits
		}
	}
	if li := linkedinRe.FindString(line); li != "" {
		rec.LinkedIn = li
	}
	if gh := githubRe.FindString(line); gh != "" {
		rec.GitHub = gh
		rec.Website = gh
	}

	cleaned := line
	for _, pat := range []*regexp.Regexp{emailRe, phoneRe, linkedinRe, githubRe} {
		cleaned = pat.ReplaceAllString(cleaned, "")
	}
	cleaned = bulletSepRe.ReplaceAllString(cleaned, " ")
	cleaned = phoneResidueRe.ReplaceAllString(cleaned, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if len(cleaned) > 2 {
		rec.Location = strings.TrimSpace(cleaned)
	}
}

// normalizePhone strips every non-digit, keeps the last ten digits of an
// over-long match, and rejects anything shorter than ten digits.
func normalizePhone(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	if len(digits) < 10 {
		return ""
	}
	return digits
}

package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

var nameWordRe = regexp.MustCompile(`^[A-Za-z\-']+$`)

var nameSkipWords = map[string]bool{
	"resume": true, "cv": true, "profile": true, "summary": true,
	"education": true, "experience": true, "skills": true, "projects": true,
	"certifications": true, "contact": true, "objective": true, "professional": true,
}

var contactSignals = []string{"@", "github", "linkedin", "http", "www", ".com", ".in", "+91"}

var (
	headerNoiseWordRe = regexp.MustCompile(`(?i)\b(Engineering|Location|Mumbai|Delhi|Bangalore|Vasai|Thane|Bhayadar|India)\b`)
	headerNoiseCharRe = regexp.MustCompile(`[|•,\d+()\-/]`)
	domainTokenRe     = regexp.MustCompile(`\S+\.\S+`)
)

// ResolveName finds the candidate's name with a three-pass cascade over the
// document's non-empty lines:
//
//  1. the first of the top twelve lines that is a plausible name and carries
//     no contact signal;
//  2. the top five lines with contact fragments and header noise stripped,
//     first survivor that is a plausible name;
//  3. the trailing two- then three-word window of the first line's last
//     pipe segment.
//
// When every pass fails it falls back to the first line truncated to fifty
// characters.
func ResolveName(lines []string) string {
	for _, line := range top(lines, 12) {
		if !hasContactSignal(line) && isPlausibleName(line) {
			if isUpperLine(line) {
				return titleCase(line)
			}
			return line
		}
	}

	for _, line := range top(lines, 5) {
		cleaned := emailRe.ReplaceAllString(line, "")
		cleaned = bareURLRe.ReplaceAllString(cleaned, "")
		cleaned = githubRe.ReplaceAllString(cleaned, "")
		cleaned = linkedinRe.ReplaceAllString(cleaned, "")
		cleaned = headerNoiseWordRe.ReplaceAllString(cleaned, "")
		cleaned = headerNoiseCharRe.ReplaceAllString(cleaned, " ")
		cleaned = strings.Join(strings.Fields(cleaned), " ")
		if isPlausibleName(cleaned) {
			return titleCase(cleaned)
		}
	}

	first := ""
	if len(lines) > 0 {
		first = lines[0]
	}
	segs := strings.Split(first, "|")
	lastSeg := strings.TrimSpace(segs[len(segs)-1])
	lastSeg = domainTokenRe.ReplaceAllString(lastSeg, " ")
	words := strings.Fields(lastSeg)
	for _, n := range []int{2, 3} {
		if len(words) < n {
			continue
		}
		candidate := strings.Join(words[len(words)-n:], " ")
		if isPlausibleName(candidate) {
			return titleCase(candidate)
		}
	}

	if r := []rune(first); len(r) > 50 {
		return string(r[:50])
	}
	return first
}

// isPlausibleName accepts two to four words of letters, hyphens, and
// apostrophes, none of which is a document-structure word.
func isPlausibleName(token string) bool {
	words := strings.Fields(strings.TrimSpace(token))
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if nameSkipWords[strings.ToLower(w)] {
			return false
		}
		if !nameWordRe.MatchString(w) {
			return false
		}
	}
	return true
}

func hasContactSignal(line string) bool {
	ll := strings.ToLower(line)
	for _, sig := range contactSignals {
		if strings.Contains(ll, sig) {
			return true
		}
	}
	return strings.Contains(line, "|") || strings.Contains(line, "•")
}

func top(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}

// isUpperLine reports whether the line has at least one letter and no
// lowercase letters.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// titleCase uppercases the first letter of every run of letters and
// lowercases the rest.
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}

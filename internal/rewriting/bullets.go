// Package rewriting is the deterministic resume rewriter: phrase-level rules
// that strengthen summaries, bullets, and skill lists without any model
// call. It always rewrites, it never depends on network state, and the same
// input always yields the same output.
package rewriting

import (
	"regexp"
	"strings"
	"unicode"
)

// bulletRules strengthen weak bullet openers. Rules are ordered; the first
// rule that changes a line wins and the rest are skipped.
var bulletRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)^As an? [\w\s]+ at [\w\s]+, I\s+`), ""},
	{regexp.MustCompile(`(?i)^As an? [\w\s]+, I\s+`), ""},
	{regexp.MustCompile(`(?i)^I contributed to\b`), "Collaborated to deliver"},
	{regexp.MustCompile(`(?i)^Contributed to the design and development of\b`), "Designed and developed"},
	{regexp.MustCompile(`(?i)^Contributed to\b`), "Collaborated to deliver"},
	{regexp.MustCompile(`(?i)^Leading the development of\b`), "Led end-to-end development of"},
	{regexp.MustCompile(`(?i)^Was responsible for\b`), "Managed"},
	{regexp.MustCompile(`(?i)^Helped (with |to )?`), "Assisted in "},
	{regexp.MustCompile(`(?i)^Worked on\b`), "Developed"},
	{regexp.MustCompile(`(?i)^Used\b`), "Leveraged"},
	{regexp.MustCompile(`(?i)^Made\b`), "Created"},
	{regexp.MustCompile(`(?i)^Did\b`), "Executed"},
	{regexp.MustCompile(`(?i)^Provided\b`), "Delivered"},
	{regexp.MustCompile(`(?i)^Implemented a\b`), "Engineered a"},
	{regexp.MustCompile(`(?i)^Designed to\b`), "Developed to"},
}

// RewriteBullets applies the opener rules line by line, preserving each
// line's bullet marker ("• " or "- ") and leaving blank lines untouched.
// The first letter of every rewritten line is capitalized.
func RewriteBullets(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimLeft(strings.TrimSpace(line), "•-* ")
		if stripped == "" {
			out = append(out, line)
			continue
		}

		improved := stripped
		for _, rule := range bulletRules {
			if rewritten := rule.pattern.ReplaceAllString(improved, rule.replacement); rewritten != improved {
				improved = strings.TrimSpace(rewritten)
				break
			}
		}

		improved = capitalizeFirst(improved)

		prefix := ""
		if strings.HasPrefix(line, "• ") {
			prefix = "• "
		} else if strings.HasPrefix(line, "- ") {
			prefix = "- "
		}
		out = append(out, prefix+improved)
	}
	return strings.Join(out, "\n")
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) > 0 && unicode.IsLower(r[0]) {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

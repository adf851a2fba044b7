package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ats/internal/types"
)

var (
	skillSepRe   = regexp.MustCompile(`[•·|▸▪\n]`)
	skillLabelRe = regexp.MustCompile(`[A-Za-z &/()]+:\s*`)
)

// skillBadStarts rejects fragments of prose that leak into skill sections.
var skillBadStarts = []string{"demonstrating", "i am", "with", "and ", "the ", "other basics"}

// knownSkills is the recognition catalog used when no skills section was
// found: any of these present anywhere in the document text counts.
var knownSkills = []string{
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go",
	"React", "Angular", "Vue", "Next.js", "Node.js", "Express",
	"Flutter", "Dart", "Android", "iOS", "Swift", "Kotlin",
	"Django", "Flask", "FastAPI", "Spring Boot",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Firebase",
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Linux", "Git",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
	"Machine Learning", "Deep Learning", "NLP", "LLM", "Generative AI",
	"LangChain", "Hugging Face", "RAG",
	"REST API", "GraphQL", "Microservices", "CI/CD", "Agile",
	"HTML", "CSS", "Tailwind", "Bootstrap",
}

// ParseSkillList tokenizes a skills-section body into individual skills.
// Bullets, pipes, and newlines become commas, "Label:" prefixes are dropped,
// and each candidate must be 2-49 characters, at most five words, and not
// start like a sentence fragment.
func ParseSkillList(body string) []string {
	normalized := skillSepRe.ReplaceAllString(body, ",")
	normalized = skillLabelRe.ReplaceAllString(normalized, "")

	skills := []string{}
	for _, part := range strings.Split(normalized, ",") {
		p := strings.Trim(strings.TrimSpace(part), " -–:•·")
		n := utf8.RuneCountInString(p)
		if n <= 1 || n >= 50 {
			continue
		}
		if len(strings.Fields(p)) > 5 {
			continue
		}
		if startsLikeProse(p) {
			continue
		}
		skills = append(skills, p)
	}
	return types.DedupeFold(skills, 0)
}

// FallbackSkills scans the whole document for catalog skills when no skills
// section was found.
func FallbackSkills(text string) []string {
	tl := strings.ToLower(text)
	found := []string{}
	for _, k := range knownSkills {
		if strings.Contains(tl, strings.ToLower(k)) {
			found = append(found, k)
		}
	}
	return found
}

func startsLikeProse(s string) bool {
	sl := strings.ToLower(s)
	for _, b := range skillBadStarts {
		if strings.HasPrefix(sl, b) {
			return true
		}
	}
	return false
}

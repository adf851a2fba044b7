package extraction

import (
	"log"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// StyledParagraph is one paragraph of a style-aware document: its text plus
// the lowercased style name ("title", "subtitle", "heading 1", ...).
type StyledParagraph struct {
	Style string
	Text  string
}

// FromStyled extracts a ResumeRecord from styled paragraphs, trusting the
// document's own style structure: the title paragraph is the name, the
// subtitle is the contact line, heading 1 opens a section, and inside the
// experience section heading 2 carries the duration and heading 3 the
// "title | company" line. Returns the record and the full concatenated text.
func FromStyled(paras []StyledParagraph) (*types.ResumeRecord, string) {
	rec := &types.ResumeRecord{Skills: []string{}, Certifications: []string{}}

	type namedSection struct {
		name  string
		lines []string
	}
	sections := []namedSection{}
	currentName := "header"
	currentLines := []string{}
	var currentExp *types.ExperienceEntry
	entries := []types.ExperienceEntry{}
	fullTextParts := []string{}

	flushExp := func() {
		if currentExp != nil {
			entries = append(entries, *currentExp)
			currentExp = nil
		}
	}

	for _, para := range paras {
		text := strings.TrimSpace(para.Text)
		style := strings.ToLower(para.Style)
		if style == "" {
			style = "normal"
		}
		if text == "" {
			continue
		}
		fullTextParts = append(fullTextParts, text)

		switch {
		case strings.Contains(style, "title") && !strings.Contains(style, "subtitle"):
			if isUpperLine(text) {
				rec.Name = titleCase(text)
			} else {
				rec.Name = text
			}

		case strings.Contains(style, "subtitle"):
			ParseContactLine(text, rec)

		case strings.Contains(style, "heading 1"):
			sections = append(sections, namedSection{currentName, currentLines})
			currentName = ClassifySection(text)
			currentLines = nil
			if currentName != SectionExperience {
				flushExp()
			}

		case strings.Contains(style, "heading 2") && currentName == SectionExperience:
			flushExp()
			currentExp = &types.ExperienceEntry{Duration: text}

		case strings.Contains(style, "heading 3") && currentName == SectionExperience:
			if currentExp == nil {
				currentExp = &types.ExperienceEntry{}
			}
			if i := strings.Index(text, "|"); i >= 0 {
				currentExp.Title = strings.TrimSpace(text[:i])
				currentExp.Company = strings.TrimSpace(text[i+1:])
			} else {
				currentExp.Title = text
			}

		case currentName == SectionExperience && currentExp != nil:
			currentExp.Responsibilities = append(currentExp.Responsibilities, text)

		default:
			currentLines = append(currentLines, text)
		}
	}
	sections = append(sections, namedSection{currentName, currentLines})
	flushExp()

	rec.ExperienceEntries = entries
	rec.ExperienceText = types.RenderExperienceEntries(entries)

	for _, sec := range sections {
		// Experience came from the heading structure above.
		if sec.name == SectionExperience {
			continue
		}
		body := strings.TrimSpace(strings.Join(sec.lines, "\n"))
		if body == "" {
			continue
		}
		assignSection(rec, sec.name, body)
	}

	fullText := strings.Join(fullTextParts, "\n")
	if len(rec.Skills) == 0 {
		rec.Skills = FallbackSkills(fullText)
	}
	rec.Skills = types.DedupeFold(rec.Skills, types.MaxSkills)
	rec.Certifications = types.DedupeFold(rec.Certifications, types.MaxSkills)

	if rec.Name == "" {
		rec.Name = ResolveName(fullTextParts)
	}

	rec.RecomputeFullText()
	log.Printf("[extract] parsed styled resume: name=%q experience entries=%d skills=%d",
		rec.Name, len(entries), len(rec.Skills))
	return rec, fullText
}

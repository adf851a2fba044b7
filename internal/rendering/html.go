package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

const resumeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 0.7in 0.75in; }
  body { font-family: {{.Font}}, sans-serif; font-size: 10pt; color: #222; margin: 0; }
  h1 { text-align: center; color: #{{.HeaderColor}}; font-size: 22pt; margin: 0 0 4pt 0; }
  .contact { text-align: center; font-size: 10.5pt; margin-bottom: 8pt; }
  hr { border: none; border-top: 2px solid #{{.AccentColor}}; margin: 0 0 8pt 0; }
  h2 { color: #{{.AccentColor}}; font-size: 11pt; text-transform: uppercase;
       border-bottom: 1px solid #{{.AccentColor}}; padding-bottom: 2pt; margin: 10pt 0 4pt 0; }
  .entry-header { font-weight: bold; margin: 4pt 0 2pt 0; }
  ul { margin: 2pt 0 4pt 0; padding-left: 16pt; }
  li { margin-bottom: 2pt; }
  p { margin: 0 0 3pt 0; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{.Contact}}</div>{{end}}
<hr>
{{if .Summary}}<h2>Professional Summary</h2><p>{{.Summary}}</p>{{end}}
{{if .Skills}}<h2>Skills</h2><p>{{.Skills}}</p>{{end}}
{{if .Experience}}<h2>Professional Experience</h2>
{{range .Experience}}<div class="entry-header">{{.Header}}</div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}{{end}}
{{if .Education}}<h2>Education</h2>{{range .Education}}<p>{{.}}</p>{{end}}{{end}}
{{if .Projects}}<h2>Projects</h2>{{range .Projects}}<p>{{.}}</p>{{end}}{{end}}
{{if .Certifications}}<h2>Certifications</h2><ul>{{range .Certifications}}<li>{{.}}</li>{{end}}</ul>{{end}}
</body>
</html>`

var resumeTmpl = template.Must(template.New("resume").Parse(resumeHTML))

type htmlEntry struct {
	Header  string
	Bullets []string
}

type htmlData struct {
	Font           string
	HeaderColor    string
	AccentColor    string
	Name           string
	Contact        string
	Summary        string
	Skills         string
	Experience     []htmlEntry
	Education      []string
	Projects       []string
	Certifications []string
}

// BuildHTML renders a ResumeRecord as a standalone HTML page styled by the
// named template. The output is the input to PDF generation.
func BuildHTML(rec *types.ResumeRecord, templateName string) (string, error) {
	if rec == nil {
		return "", &RenderError{Message: "nil resume record"}
	}
	tpl := LookupTemplate(templateName)

	name := rec.Name
	if name == "" {
		name = "Your Name"
	}
	data := htmlData{
		Font:           tpl.FontName,
		HeaderColor:    tpl.HeaderColor,
		AccentColor:    tpl.AccentColor,
		Name:           name,
		Contact:        contactLine(rec),
		Summary:        rec.Summary,
		Skills:         strings.Join(rec.Skills, ", "),
		Experience:     htmlExperience(rec),
		Education:      nonEmptyLines(rec.EducationText),
		Projects:       nonEmptyLines(rec.ProjectsText),
		Certifications: rec.Certifications,
	}

	var sb strings.Builder
	if err := resumeTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return sb.String(), nil
}

func htmlExperience(rec *types.ResumeRecord) []htmlEntry {
	if len(rec.ExperienceEntries) > 0 {
		entries := make([]htmlEntry, 0, len(rec.ExperienceEntries))
		for _, e := range rec.ExperienceEntries {
			header := e.Title
			if e.Company != "" {
				header += " | " + e.Company
			}
			if e.Duration != "" {
				header += " (" + e.Duration + ")"
			}
			entries = append(entries, htmlEntry{Header: header, Bullets: e.Responsibilities})
		}
		return entries
	}
	if rec.ExperienceText == "" {
		return nil
	}
	// Unstructured text renders each line as its own headerless entry.
	var entries []htmlEntry
	for _, line := range nonEmptyLines(rec.ExperienceText) {
		entries = append(entries, htmlEntry{Header: strings.TrimLeft(line, "•-* ")})
	}
	return entries
}

func nonEmptyLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

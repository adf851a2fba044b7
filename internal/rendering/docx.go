package rendering

import (
	"bytes"
	"strconv"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/jonathan/resume-ats/internal/types"
)

// GenerateDocx renders a ResumeRecord as a DOCX document using the named
// template's colors and font.
func GenerateDocx(rec *types.ResumeRecord, templateName string) ([]byte, error) {
	if rec == nil {
		return nil, &RenderError{Message: "nil resume record"}
	}
	tpl := LookupTemplate(templateName)
	doc := document.New()

	w := docxWriter{doc: doc, tpl: tpl}
	w.writeHeader(rec)
	w.writeBody(rec)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, &RenderError{Message: "failed to save docx", Cause: err}
	}
	return buf.Bytes(), nil
}

type docxWriter struct {
	doc *document.Document
	tpl Template
}

func (w docxWriter) writeHeader(rec *types.ResumeRecord) {
	name := rec.Name
	if name == "" {
		name = "Your Name"
	}
	p := w.doc.AddParagraph()
	p.Properties().SetAlignment(wml.ST_JcCenter)
	run := p.AddRun()
	run.AddText(name)
	run.Properties().SetBold(true)
	run.Properties().SetSize(24 * measurement.Point)
	run.Properties().SetFontFamily(w.tpl.FontName)
	run.Properties().SetColor(hexColor(w.tpl.HeaderColor))

	if line := contactLine(rec); line != "" {
		p := w.doc.AddParagraph()
		p.Properties().SetAlignment(wml.ST_JcCenter)
		run := p.AddRun()
		run.AddText(line)
		run.Properties().SetSize(10 * measurement.Point)
		run.Properties().SetFontFamily(w.tpl.FontName)
	}
}

func (w docxWriter) writeBody(rec *types.ResumeRecord) {
	if rec.Summary != "" {
		w.sectionHeader("Professional Summary")
		w.paragraph(rec.Summary, false)
	}
	if len(rec.Skills) > 0 {
		w.sectionHeader("Skills")
		w.paragraph(strings.Join(rec.Skills, ", "), false)
	}
	if len(rec.ExperienceEntries) > 0 {
		w.sectionHeader("Professional Experience")
		for _, entry := range rec.ExperienceEntries {
			header := entry.Title
			if entry.Company != "" {
				header += " | " + entry.Company
			}
			if entry.Duration != "" {
				header += " (" + entry.Duration + ")"
			}
			w.paragraph(header, true)
			for _, resp := range entry.Responsibilities {
				w.paragraph("• "+resp, false)
			}
		}
	} else if rec.ExperienceText != "" {
		w.sectionHeader("Professional Experience")
		w.textBlock(rec.ExperienceText)
	}
	if rec.EducationText != "" {
		w.sectionHeader("Education")
		w.textBlock(rec.EducationText)
	}
	if rec.ProjectsText != "" {
		w.sectionHeader("Projects")
		w.textBlock(rec.ProjectsText)
	}
	if len(rec.Certifications) > 0 {
		w.sectionHeader("Certifications")
		for _, cert := range rec.Certifications {
			w.paragraph("• "+cert, false)
		}
	}
}

func (w docxWriter) sectionHeader(title string) {
	p := w.doc.AddParagraph()
	run := p.AddRun()
	run.AddText(strings.ToUpper(title))
	run.Properties().SetBold(true)
	run.Properties().SetSize(11 * measurement.Point)
	run.Properties().SetFontFamily(w.tpl.FontName)
	run.Properties().SetColor(hexColor(w.tpl.AccentColor))
}

func (w docxWriter) paragraph(text string, bold bool) {
	p := w.doc.AddParagraph()
	run := p.AddRun()
	run.AddText(text)
	run.Properties().SetBold(bold)
	run.Properties().SetSize(10 * measurement.Point)
	run.Properties().SetFontFamily(w.tpl.FontName)
}

func (w docxWriter) textBlock(text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w.paragraph(line, false)
	}
}

// contactLine joins the available contact fields with " | ".
func contactLine(rec *types.ResumeRecord) string {
	parts := make([]string, 0, 5)
	for _, field := range []string{rec.Email, rec.Phone, rec.Location, rec.LinkedIn, rec.Website, rec.GitHub} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, " | ")
}

// hexColor converts a 6-digit hex string (no leading '#') to a gooxml color.
// Malformed input falls back to black.
func hexColor(hex string) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGB(0, 0, 0)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGB(0, 0, 0)
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

package ingestion

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"baliance.com/gooxml/document"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-ats/internal/extraction"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// ReadStyledParagraphs reads a DOCX document and returns its paragraphs with
// their style names normalized to the "title" / "subtitle" / "heading N"
// form the styled extractor understands.
func ReadStyledParagraphs(data []byte) ([]extraction.StyledParagraph, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewIngestError("failed to read docx", err)
	}

	paras := make([]extraction.StyledParagraph, 0, len(doc.Paragraphs()))
	for _, p := range doc.Paragraphs() {
		var sb strings.Builder
		for _, run := range p.Runs() {
			sb.WriteString(run.Text())
		}
		paras = append(paras, extraction.StyledParagraph{
			Style: normalizeStyleName(p.Style()),
			Text:  sb.String(),
		})
	}
	return paras, nil
}

// ExtractDocxText extracts raw text from a DOCX without style information,
// used when styled reading fails.
func ExtractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", NewIngestError("failed to parse docx", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	// The content is WordprocessingML; closing paragraph tags become line
	// breaks before the remaining markup is stripped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return content, nil
}

// normalizeStyleName maps DOCX style IDs ("Heading1", "Subtitle") to the
// spaced lowercase form ("heading 1", "subtitle").
func normalizeStyleName(styleID string) string {
	if styleID == "" {
		return "normal"
	}
	var sb strings.Builder
	for i, r := range styleID {
		if i > 0 && (unicode.IsUpper(r) || unicode.IsDigit(r) && !unicode.IsDigit(rune(styleID[i-1]))) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

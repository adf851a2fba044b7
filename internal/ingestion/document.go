// Package ingestion turns inputs from the outside world — uploaded PDF,
// DOCX, and text documents, plus job-posting URLs — into the plain text and
// records the rest of the pipeline works on.
package ingestion

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-ats/internal/extraction"
	"github.com/jonathan/resume-ats/internal/types"
)

// ParseResume extracts a ResumeRecord and the raw document text from an
// uploaded file, dispatching on the file extension. DOCX documents go
// through the style-aware extractor when their styles can be read, and fall
// back to raw text extraction otherwise.
//
// A corrupt PDF or DOCX does not fail the call: the record comes back
// minimal with a diagnostic string as its text, so the caller can still
// proceed. Errors are reserved for unsupported file types.
func ParseResume(filename string, data []byte) (*types.ResumeRecord, string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := ExtractPDFText(data)
		if err != nil {
			log.Printf("[ingest] pdf extraction failed: %v", err)
			text = fmt.Sprintf("(PDF parse error: %v)", err)
		}
		return extraction.FromText(text), text, nil

	case ".docx":
		if paras, err := ReadStyledParagraphs(data); err == nil && len(paras) > 0 {
			rec, fullText := extraction.FromStyled(paras)
			return rec, fullText, nil
		} else if err != nil {
			log.Printf("[ingest] styled docx read failed, falling back to raw text: %v", err)
		}
		text, err := ExtractDocxText(data)
		if err != nil {
			log.Printf("[ingest] docx extraction failed: %v", err)
			text = fmt.Sprintf("(DOCX parse error: %v)", err)
		}
		return extraction.FromText(text), text, nil

	case ".txt", "":
		text := string(data)
		return extraction.FromText(text), text, nil

	default:
		return nil, "", NewIngestError("unsupported file type: "+filepath.Ext(filename), nil)
	}
}

package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResumeText(t *testing.T) {
	data := []byte("Jane Doe\njane@example.com\n\nSKILLS\nGo, Python\n")

	rec, raw, err := ParseResume("resume.txt", data)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, []string{"Go", "Python"}, rec.Skills)
	assert.Equal(t, string(data), raw)
}

func TestParseResumeUnsupportedType(t *testing.T) {
	_, _, err := ParseResume("resume.odt", []byte("x"))

	require.Error(t, err)
	var ingestErr *IngestError
	assert.ErrorAs(t, err, &ingestErr)
}

func TestParseResumeCorruptDocument(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		diagnostic string
	}{
		{"corrupt pdf", "resume.pdf", "(PDF parse error:"},
		{"corrupt docx", "resume.docx", "(DOCX parse error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, raw, err := ParseResume(tt.filename, []byte("not a real document"))

			// Corrupt documents degrade to a minimal record with a
			// diagnostic string instead of failing the call.
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Contains(t, raw, tt.diagnostic)
			assert.Contains(t, rec.FullText, tt.diagnostic)
			assert.Empty(t, rec.Email)
			assert.Empty(t, rec.Skills)
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf normalized", "a\r\nb\rc", "a\nb\nc"},
		{"inline whitespace collapsed", "a   b\t\tc", "a b c"},
		{"blank runs collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding space trimmed", "  \n a \n ", "a"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

const jobPageHTML = `<html><head><title>Job</title></head><body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
  <h1>Backend Engineer</h1>
  <p>We need   Go and PostgreSQL experience.</p>
</div>
<footer>Copyright</footer>
</body></html>`

func TestFetchJobDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	text, err := FetchJobDescription(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "We need Go and PostgreSQL experience.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestFetchJobDescriptionInvalidURL(t *testing.T) {
	_, err := FetchJobDescription(context.Background(), "not-a-url")
	assert.Error(t, err)
}

func TestFetchJobDescriptionHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchJobDescription(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestExtractJobTextFallsBackToBody(t *testing.T) {
	text, err := ExtractJobText("<html><body><p>Plain posting text</p></body></html>")

	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestNormalizeStyleName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Title", "title"},
		{"Subtitle", "subtitle"},
		{"Heading1", "heading 1"},
		{"Heading2", "heading 2"},
		{"", "normal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeStyleName(tt.in), tt.in)
	}
}

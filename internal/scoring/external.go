package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-ats/internal/types"
)

// DefaultReviewBaseURL is the remote resume review service endpoint.
const DefaultReviewBaseURL = "https://api.magicalapi.com"

const reviewTimeout = 60 * time.Second

// ReviewClient talks to the remote resume review service. A nil client (or
// one with an empty API key) disables the remote path entirely.
type ReviewClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewReviewClient creates a review client. An empty baseURL selects the
// default endpoint.
func NewReviewClient(baseURL, apiKey string) *ReviewClient {
	if baseURL == "" {
		baseURL = DefaultReviewBaseURL
	}
	return &ReviewClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: reviewTimeout},
	}
}

// Enabled reports whether the client has credentials to call the service.
func (c *ReviewClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Review uploads the resume document and returns the parsed review report,
// or nil when the service response is unusable.
func (c *ReviewClient) Review(ctx context.Context, resumeBytes []byte, filename string) (*types.ScoreReport, error) {
	resp, err := c.upload(ctx, "/resume/en/v1/review", resumeBytes, filename, "")
	if err != nil {
		return nil, err
	}
	return parseReview(resp), nil
}

// MatchScore uploads the resume with a job description and returns the
// remote job-match score, or zero when the service gave none.
func (c *ReviewClient) MatchScore(ctx context.Context, resumeBytes []byte, jobDescription, filename string) (int, error) {
	resp, err := c.upload(ctx, "/resume/en/v1/score", resumeBytes, filename, jobDescription)
	if err != nil {
		return 0, err
	}
	return parseMatchScore(resp), nil
}

func (c *ReviewClient) upload(ctx context.Context, path string, resumeBytes []byte, filename, jobDescription string) (map[string]any, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return nil, NewReviewError("build multipart body", err)
	}
	if _, err := part.Write(resumeBytes); err != nil {
		return nil, NewReviewError("build multipart body", err)
	}
	if jobDescription != "" {
		if err := writer.WriteField("job_description", jobDescription); err != nil {
			return nil, NewReviewError("build multipart body", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, NewReviewError("build multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, NewReviewError("build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewReviewError("call review service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewReviewError(fmt.Sprintf("review service returned %d: %s", resp.StatusCode, raw), nil)
	}

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, NewReviewError("decode review response", err)
	}
	return parsed, nil
}

// parseReview converts a raw review response into a report. The response is
// parsed defensively: a missing or zero overall score means the review is
// unusable and nil is returned.
func parseReview(resp map[string]any) *types.ScoreReport {
	data := asMap(resp["data"])
	if data == nil {
		data = resp
	}
	overall := asInt(data["score"])
	if overall == 0 {
		return nil
	}

	sections := asMap(data["sections"])
	suggestions := asStrings(data["suggestions"])
	for _, secAny := range sections {
		sec := asMap(secAny)
		if sec == nil {
			continue
		}
		for _, con := range asStrings(sec["cons"]) {
			if con != "" && !containsString(suggestions, con) {
				suggestions = append(suggestions, con)
			}
		}
	}

	sectionScoreOr := func(key string) int {
		if sec := asMap(sections[key]); sec != nil {
			if v := asInt(sec["score"]); v != 0 {
				return v
			}
		}
		return overall
	}

	report := &types.ScoreReport{
		Overall:         overall,
		Keyword:         sectionScoreOr("skills"),
		Format:          sectionScoreOr("contact"),
		Content:         sectionScoreOr("experience"),
		Section:         sectionScoreOr("summary"),
		Suggestions:     suggestions,
		MissingKeywords: asStrings(data["missing_keywords"]),
		Source:          types.SourceRemote,
	}
	report.Truncate()
	return report
}

func parseMatchScore(resp map[string]any) int {
	data := asMap(resp["data"])
	if data == nil {
		data = resp
	}
	return asInt(data["score"])
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%f", &f); err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}

func asStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}

func logReviewFailure(stage string, err error) {
	log.Printf("[score] remote %s failed: %v", stage, err)
}

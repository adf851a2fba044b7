package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ats/internal/db"
	"github.com/jonathan/resume-ats/internal/enhancement"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/rendering"
	"github.com/jonathan/resume-ats/internal/types"
)

// maxUploadSize bounds resume uploads (10 MB)
const maxUploadSize = 10 << 20

// sessionResponse is the detailed view of a session
type sessionResponse struct {
	Session        *db.Session         `json:"session"`
	Record         *types.ResumeRecord `json:"record,omitempty"`
	EnhancedRecord *types.ResumeRecord `json:"enhanced_record,omitempty"`
	Report         *types.ScoreReport  `json:"report,omitempty"`
	EnhancedReport *types.ScoreReport  `json:"enhanced_report,omitempty"`
}

// handleUploadResume accepts a multipart resume upload, parses it, and
// creates a new session.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to parse multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	rec, rawText, err := ingestion.ParseResume(header.Filename, data)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	template := r.FormValue("template")
	if template == "" {
		template = rendering.DefaultTemplate
	}

	sessionID, err := s.db.CreateSession(r.Context(), s.optionalUserID(r), header.Filename, template)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.db.SaveArtifact(r.Context(), sessionID, db.KindOriginalRecord, rec); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.SaveTextArtifact(r.Context(), sessionID, db.KindRawText, rawText); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if jd := r.FormValue("job_description"); jd != "" {
		if err := s.db.SaveTextArtifact(r.Context(), sessionID, db.KindJobDescription, jd); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse{Session: session, Record: rec})
}

// handleManualResume creates a session from manually entered resume fields.
func (s *Server) handleManualResume(w http.ResponseWriter, r *http.Request) {
	var req struct {
		types.ManualResumeInput
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := req.ToRecord()

	template := req.Template
	if template == "" {
		template = rendering.DefaultTemplate
	}

	sessionID, err := s.db.CreateSession(r.Context(), s.optionalUserID(r), "manual", template)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.SaveArtifact(r.Context(), sessionID, db.KindOriginalRecord, rec); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.SaveTextArtifact(r.Context(), sessionID, db.KindRawText, rec.FullText); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse{Session: session, Record: rec})
}

// handleFetchJobDescription fetches a job posting URL and returns the
// extracted text.
func (s *Server) handleFetchJobDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing 'url' field")
		return
	}

	text, err := ingestion.FetchJobDescription(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"job_description": text})
}

// handleListSessions lists recent sessions, optionally filtered by status
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	filters := db.SessionFilters{
		Status: r.URL.Query().Get("status"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid 'limit' parameter")
			return
		}
		filters.Limit = limit
	}
	if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid 'user_id' parameter")
			return
		}
		filters.UserID = userID
	}

	sessions, err := s.db.ListSessions(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []db.Session{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"sessions": sessions})
}

// handleGetSession returns a session with its records and reports
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	resp := sessionResponse{Session: session}

	var rec types.ResumeRecord
	if found, err := s.db.GetArtifactInto(r.Context(), sessionID, db.KindOriginalRecord, &rec); err == nil && found {
		resp.Record = &rec
	}
	var enhanced types.ResumeRecord
	if found, err := s.db.GetArtifactInto(r.Context(), sessionID, db.KindEnhancedRecord, &enhanced); err == nil && found {
		resp.EnhancedRecord = &enhanced
	}
	var report types.ScoreReport
	if found, err := s.db.GetArtifactInto(r.Context(), sessionID, db.KindOriginalReport, &report); err == nil && found {
		resp.Report = &report
	}
	var enhancedReport types.ScoreReport
	if found, err := s.db.GetArtifactInto(r.Context(), sessionID, db.KindEnhancedReport, &enhancedReport); err == nil && found {
		resp.EnhancedReport = &enhancedReport
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDeleteSession removes a session and its artifacts
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteSession(r.Context(), sessionID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleScoreSession computes the ATS score for a session's resume
func (s *Server) handleScoreSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		JobDescription string `json:"job_description"`
		JobURL         string `json:"job_url"`
	}
	if r.Body != nil {
		// Body is optional; scoring works without a job description
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	jd, ok := s.resolveJobDescription(w, r, sessionID, req.JobDescription, req.JobURL)
	if !ok {
		return
	}

	var rec types.ResumeRecord
	found, err := s.db.GetArtifactInto(r.Context(), sessionID, db.KindOriginalRecord, &rec)
	if err != nil || !found {
		s.errorResponse(w, http.StatusConflict, "session has no parsed resume")
		return
	}
	rawText, err := s.db.GetTextArtifact(r.Context(), sessionID, db.KindRawText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	report := s.scorer.Calculate(r.Context(), &rec, rawText, jd, nil, "")

	if err := s.db.SaveArtifact(r.Context(), sessionID, db.KindOriginalReport, report); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.UpdateSessionStatus(r.Context(), sessionID, db.StatusScored); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleEnhanceSession enhances a session's resume and rescores it
func (s *Server) handleEnhanceSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req struct {
		TargetRole      string `json:"target_role"`
		ExperienceLevel string `json:"experience_level"`
		JobDescription  string `json:"job_description"`
		JobURL          string `json:"job_url"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	jd, ok := s.resolveJobDescription(w, r, sessionID, req.JobDescription, req.JobURL)
	if !ok {
		return
	}

	var rec types.ResumeRecord
	found, err := s.db.GetArtifactInto(r.Context(), sessionID, db.KindOriginalRecord, &rec)
	if err != nil || !found {
		s.errorResponse(w, http.StatusConflict, "session has no parsed resume")
		return
	}
	rawText, err := s.db.GetTextArtifact(r.Context(), sessionID, db.KindRawText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	enhanced := s.enhancer.Enhance(r.Context(), &rec, enhancement.Options{
		JobDescription:  jd,
		TargetRole:      req.TargetRole,
		ExperienceLevel: req.ExperienceLevel,
	})

	// The enhanced score considers both the original document text and the
	// rewritten content, so keyword coverage never regresses from rewriting.
	combinedText := strings.TrimSpace(rawText + "\n" + enhanced.FullText)
	report := s.scorer.Calculate(r.Context(), enhanced, combinedText, jd, nil, "")

	if err := s.db.SaveArtifact(r.Context(), sessionID, db.KindEnhancedRecord, enhanced); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.SaveArtifact(r.Context(), sessionID, db.KindEnhancedReport, report); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.UpdateSessionStatus(r.Context(), sessionID, db.StatusEnhanced); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse{
		EnhancedRecord: enhanced,
		EnhancedReport: report,
	})
}

// handleRenderSession renders a session's resume (enhanced when available)
// as docx, html, or pdf.
func (s *Server) handleRenderSession(w http.ResponseWriter, r *http.Request) {
	sessionID, session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "docx"
	}

	template := r.URL.Query().Get("template")
	if template == "" {
		template = session.Template
	}

	var rec types.ResumeRecord
	source := db.KindEnhancedRecord
	if r.URL.Query().Get("version") == "original" {
		source = db.KindOriginalRecord
	}
	found, err := s.db.GetArtifactInto(r.Context(), sessionID, source, &rec)
	if err == nil && !found && source == db.KindEnhancedRecord {
		found, err = s.db.GetArtifactInto(r.Context(), sessionID, db.KindOriginalRecord, &rec)
	}
	if err != nil || !found {
		s.errorResponse(w, http.StatusConflict, "session has no resume to render")
		return
	}

	base := strings.ReplaceAll(strings.TrimSpace(rec.Name), " ", "_")
	if base == "" {
		base = "resume"
	}

	switch format {
	case "docx":
		data, err := rendering.GenerateDocx(&rec, template)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".docx"))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case "html":
		html, err := rendering.BuildHTML(&rec, template)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	case "pdf":
		data, err := rendering.GeneratePDF(r.Context(), &rec, template)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".pdf"))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	default:
		s.errorResponse(w, http.StatusBadRequest, "unsupported format: "+format)
		return
	}

	if err := s.db.UpdateSessionStatus(r.Context(), sessionID, db.StatusRendered); err != nil {
		// Response already sent
		log.Printf("[server] failed to update session status: %v", err)
	}
}

// handleListTemplates lists the available visual templates
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": rendering.TemplateNames})
}

// lookupSession parses the {id} path value and loads the session, writing
// the error response itself when either fails.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, *db.Session, bool) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session ID")
		return uuid.Nil, nil, false
	}
	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return uuid.Nil, nil, false
	}
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return uuid.Nil, nil, false
	}
	return sessionID, session, true
}

// resolveJobDescription picks the job description for an operation: an
// explicit value wins, then a URL to fetch, then the stored artifact. The
// chosen value is persisted for later operations.
func (s *Server) resolveJobDescription(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, explicit, jobURL string) (string, bool) {
	jd := explicit
	if jd == "" && jobURL != "" {
		fetched, err := ingestion.FetchJobDescription(r.Context(), jobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return "", false
		}
		jd = fetched
	}
	if jd == "" {
		stored, err := s.db.GetTextArtifact(r.Context(), sessionID, db.KindJobDescription)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return "", false
		}
		return stored, true
	}
	if err := s.db.SaveTextArtifact(r.Context(), sessionID, db.KindJobDescription, jd); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return "", false
	}
	return jd, true
}

// optionalUserID extracts the authenticated user ID when the request
// carries a valid token; anonymous sessions are allowed.
func (s *Server) optionalUserID(r *http.Request) *uuid.UUID {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil
	}
	id := claims.GetUserID()
	return &id
}

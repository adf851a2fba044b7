package db

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one resume-tailoring session: an uploaded or manually
// entered resume moving through parse, score, enhance, and render.
type Session struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Filename  string     `json:"filename"`
	Template  string     `json:"template"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Session status constants
const (
	StatusParsed   = "parsed"
	StatusScored   = "scored"
	StatusEnhanced = "enhanced"
	StatusRendered = "rendered"
)

// Artifact kind constants for known session artifacts
const (
	// JSON artifacts
	KindOriginalRecord = "original_record"
	KindOriginalReport = "original_report"
	KindEnhancedRecord = "enhanced_record"
	KindEnhancedReport = "enhanced_report"

	// Text artifacts
	KindRawText        = "raw_text"
	KindJobDescription = "job_description"
)

// User represents a user profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

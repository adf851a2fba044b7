package types

// Caps applied to the advisory lists on a score report.
const (
	MaxSuggestions     = 8
	MaxMissingKeywords = 15
)

// Score sources.
const (
	SourceBuiltin = "builtin"
	SourceRemote  = "remote"
	SourceMerged  = "merged"
)

// ScoreReport is the result of scoring a resume. Once produced it is never
// mutated; re-scoring yields a fresh report.
type ScoreReport struct {
	Overall int `json:"overall_score"`
	Keyword int `json:"keyword_score"`
	Format  int `json:"format_score"`
	Content int `json:"content_score"`
	Section int `json:"section_score"`

	Suggestions     []string `json:"suggestions"`
	MissingKeywords []string `json:"missing_keywords"`

	PowerVerbCount         int `json:"power_verb_count"`
	QuantifiedAchievements int `json:"quantified_achievements"`

	// Source records which scorer produced the report: builtin, remote, or
	// merged (remote overall with builtin sub-scores backfilled).
	Source string `json:"source"`

	// Populated only on merged reports.
	BuiltinOverall int `json:"builtin_score,omitempty"`
	RemoteOverall  int `json:"remote_score,omitempty"`
	JobMatch       int `json:"job_match_score,omitempty"`
}

// Truncate enforces the suggestion and missing-keyword caps in place.
func (s *ScoreReport) Truncate() {
	if len(s.Suggestions) > MaxSuggestions {
		s.Suggestions = s.Suggestions[:MaxSuggestions]
	}
	if len(s.MissingKeywords) > MaxMissingKeywords {
		s.MissingKeywords = s.MissingKeywords[:MaxMissingKeywords]
	}
}

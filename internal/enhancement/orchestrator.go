// Package enhancement coordinates resume enhancement: an AI rewrite path
// when a model client is available, with the deterministic rule-based
// rewriter as the always-working fallback.
package enhancement

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jonathan/resume-ats/internal/llm"
	"github.com/jonathan/resume-ats/internal/prompts"
	"github.com/jonathan/resume-ats/internal/rewriting"
	"github.com/jonathan/resume-ats/internal/types"
)

const promptFile = "enhancement.json"

// Options tune a single enhancement run.
type Options struct {
	JobDescription  string
	TargetRole      string
	ExperienceLevel string
}

// Orchestrator runs enhancement. The quota flag is sticky for the lifetime
// of the instance: after the first quota error no further model calls are
// made, every subsequent run goes straight to the rule-based rewriter.
type Orchestrator struct {
	client llm.Client

	mu            sync.Mutex
	quotaExceeded bool
}

// New creates an orchestrator. client may be nil to disable the AI path.
func New(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client}
}

// Enhance returns an enhanced copy of the record. The AI path is used when
// a client is available and quota has not been exhausted; its output is kept
// only when it actually changed one of the prose fields. Every failure mode
// falls back to the rule-based rewriter, so Enhance always succeeds.
func (o *Orchestrator) Enhance(ctx context.Context, rec *types.ResumeRecord, opts Options) *types.ResumeRecord {
	if o.client != nil && !o.isQuotaExceeded() {
		result, err := o.aiEnhance(ctx, rec, opts)
		if err != nil {
			log.Printf("[enhance] AI path failed, using rule-based: %v", err)
		} else if isImproved(result, rec) {
			result.MergeMissing(rec)
			result.RecomputeFullText()
			return result
		} else {
			log.Printf("[enhance] AI output unchanged, using rule-based")
		}
	}

	return rewriting.Enhance(rec, opts.TargetRole, opts.JobDescription)
}

func (o *Orchestrator) isQuotaExceeded() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.quotaExceeded
}

func (o *Orchestrator) markQuotaExceeded() {
	o.mu.Lock()
	o.quotaExceeded = true
	o.mu.Unlock()
}

// aiEnhance rewrites each part with its own model call. A failed call keeps
// that part's original text; a quota error aborts the whole chain.
func (o *Orchestrator) aiEnhance(ctx context.Context, rec *types.ResumeRecord, opts Options) (*types.ResumeRecord, error) {
	enhanced := rec.Clone()
	promptCtx := buildContext(opts)

	summary, err := o.call(ctx, "summary", map[string]string{
		"Ctx":      promptCtx,
		"Original": orPlaceholder(rec.Summary, "(none — create one from context)"),
	}, llm.TierStandard)
	if err != nil {
		return nil, err
	}
	if summary != "" {
		enhanced.Summary = summary
	}

	if rec.ExperienceText != "" {
		text, err := o.call(ctx, "experience", map[string]string{
			"Ctx":      promptCtx,
			"Original": truncate(rec.ExperienceText, 2000),
		}, llm.TierStandard)
		if err != nil {
			return nil, err
		}
		if text != "" {
			enhanced.ExperienceText = text
		}
	}

	for i, entry := range rec.ExperienceEntries {
		if len(entry.Responsibilities) == 0 {
			continue
		}
		bullets, err := o.call(ctx, "bullets", map[string]string{
			"Ctx":      promptCtx,
			"Original": strings.Join(entry.Responsibilities, "\n"),
		}, llm.TierStandard)
		if err != nil {
			return nil, err
		}
		if bullets != "" {
			enhanced.ExperienceEntries[i].Responsibilities = strings.Split(bullets, "\n")
		}
	}

	if rec.ProjectsText != "" {
		text, err := o.call(ctx, "projects", map[string]string{
			"Ctx":      promptCtx,
			"Original": truncate(rec.ProjectsText, 1500),
		}, llm.TierStandard)
		if err != nil {
			return nil, err
		}
		if text != "" {
			enhanced.ProjectsText = text
		}
	}

	if len(rec.Skills) > 0 {
		list, err := o.call(ctx, "skills", map[string]string{
			"Role":   opts.TargetRole,
			"Skills": strings.Join(rec.Skills, ", "),
			"JD":     orPlaceholder(truncate(opts.JobDescription, 300), "not provided"),
		}, llm.TierLite)
		if err != nil {
			return nil, err
		}
		if list != "" {
			merged := append([]string{}, rec.Skills...)
			for _, s := range strings.Split(list, ",") {
				if t := strings.TrimSpace(s); t != "" {
					merged = append(merged, t)
				}
			}
			enhanced.Skills = types.DedupeFold(merged, types.MaxSkills)
		}
	}

	return enhanced, nil
}

// call formats and issues one prompt. Quota errors set the sticky flag and
// propagate; every other failure degrades to an empty result so the caller
// keeps the original text for that part.
func (o *Orchestrator) call(ctx context.Context, key string, data map[string]string, tier llm.ModelTier) (string, error) {
	if o.isQuotaExceeded() {
		return "", nil
	}

	template, err := prompts.Get(promptFile, key)
	if err != nil {
		return "", fmt.Errorf("load prompt %s: %w", key, err)
	}
	system, err := prompts.Get(promptFile, "system")
	if err != nil {
		return "", fmt.Errorf("load system prompt: %w", err)
	}

	prompt := system + "\n\n" + prompts.Format(template, data)
	out, err := o.client.GenerateText(ctx, prompt, tier)
	if err != nil {
		if llm.IsQuotaError(err) {
			o.markQuotaExceeded()
			log.Printf("[enhance] model quota exceeded — switching to rule-based enhancement")
			return "", err
		}
		log.Printf("[enhance] model call %s failed: %v", key, err)
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// isImproved reports whether the AI output actually changed one of the
// prose fields it was asked to rewrite.
func isImproved(enhanced, original *types.ResumeRecord) bool {
	if enhanced == nil {
		return false
	}
	for _, pair := range [][2]string{
		{enhanced.Summary, original.Summary},
		{enhanced.ExperienceText, original.ExperienceText},
		{enhanced.ProjectsText, original.ProjectsText},
	} {
		newText := strings.TrimSpace(pair[0])
		origText := strings.TrimSpace(pair[1])
		if origText != "" && newText != "" && origText != newText {
			return true
		}
	}
	return false
}

func buildContext(opts Options) string {
	parts := []string{}
	if opts.TargetRole != "" {
		parts = append(parts, "Target Role: "+opts.TargetRole)
	}
	if opts.ExperienceLevel != "" {
		parts = append(parts, "Experience Level: "+opts.ExperienceLevel)
	}
	if opts.JobDescription != "" {
		parts = append(parts, "Job Description excerpt: "+truncate(opts.JobDescription, 400))
	}
	return strings.Join(parts, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

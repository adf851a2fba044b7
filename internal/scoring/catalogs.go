// Package scoring computes ATS compatibility reports for resume records,
// combining a deterministic built-in scorer with an optional remote review
// service.
package scoring

import "regexp"

// TechnicalKeywords is the recognition catalog for the keyword sub-score.
// Matching is lowercase substring.
var TechnicalKeywords = []string{
	"python", "javascript", "java", "c++", "c#", "react", "angular", "vue", "node.js",
	"django", "flask", "spring", "aws", "azure", "gcp", "docker", "kubernetes",
	"machine learning", "deep learning", "tensorflow", "pytorch", "sql", "postgresql",
	"mongodb", "redis", "git", "github", "ci/cd", "agile", "scrum", "devops",
	"html", "css", "typescript", "graphql", "rest api", "microservices", "linux",
	"data science", "artificial intelligence", "nlp", "computer vision", "blockchain",
	"generative ai", "llm", "langchain", "hugging face", "fastapi", "streamlit",
	"flutter", "android", "reinforcement learning", "transformers", "bert",
	"fine-tuning", "rag", "crewai", "mlflow", "oracle",
}

// SoftSkills is the soft-skill catalog for the keyword sub-score.
var SoftSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"project management", "critical thinking", "collaboration", "adaptable",
	"organized", "detail-oriented", "self-motivated", "innovative", "strategic",
	"mentoring", "coaching",
}

// PowerVerbs is the action-verb catalog used by the keyword and content
// sub-scores.
var PowerVerbs = []string{
	"achieved", "improved", "reduced", "increased", "developed", "launched",
	"managed", "led", "created", "built", "designed", "implemented", "delivered",
	"optimized", "streamlined", "automated", "collaborated", "mentored", "trained",
	"analyzed", "evaluated", "generated", "enhanced", "accelerated", "drove",
	"established", "spearheaded", "orchestrated", "transformed", "scaled",
}

// quantifierPatterns detect quantified achievements (percentages, money,
// multipliers, magnitudes, change verbs followed by a number).
var quantifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+%`),
	regexp.MustCompile(`(?i)\$\d+`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\d+\+`),
	regexp.MustCompile(`(?i)\d+ (percent|million|billion|thousand)`),
	regexp.MustCompile(`(?i)(increased|decreased|reduced|improved).*\d+`),
}

// jdSkipWords filters generic capitalized words out of job-description
// keyword extraction.
var jdSkipWords = map[string]bool{
	"The": true, "This": true, "That": true, "With": true, "Will": true,
	"Must": true, "Have": true, "Your": true, "Our": true, "We": true,
	"You": true, "Are": true, "For": true, "And": true, "Not": true,
	"Any": true, "All": true, "Can": true, "Would": true, "Should": true,
	"Could": true, "Team": true, "Work": true, "Help": true, "Role": true,
	"Job": true, "Years": true, "Strong": true, "Good": true,
}

var capitalizedWordRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]{2,}\b`)

func countQuantifiers(text string) int {
	n := 0
	for _, pat := range quantifierPatterns {
		n += len(pat.FindAllString(text, -1))
	}
	return n
}

func countPresent(catalog []string, textLower string) int {
	return len(findPresent(catalog, textLower))
}

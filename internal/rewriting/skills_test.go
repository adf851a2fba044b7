package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestExpandSkills(t *testing.T) {
	got := ExpandSkills([]string{"Flutter", "Dart"}, "Flutter Developer")

	// Originals stay in front, bucket fills the gaps, generic skills follow.
	assert.Equal(t, "Flutter", got[0])
	assert.Equal(t, "Dart", got[1])
	assert.Contains(t, got, "Firebase")
	assert.Contains(t, got, "Mobile Development")
	assert.Contains(t, got, "Git")
	assert.Contains(t, got, "Communication")
	assert.NotContains(t, got[2:], "Flutter")
}

func TestExpandSkillsNoRoleMatch(t *testing.T) {
	got := ExpandSkills([]string{"Excel"}, "Accountant")

	assert.Equal(t, []string{"Excel", "Git", "Agile", "Problem Solving", "Team Collaboration", "Communication"}, got)
}

func TestExpandSkillsCapped(t *testing.T) {
	skills := []string{}
	for _, s := range []string{
		"A1", "B2", "C3", "D4", "E5", "F6", "G7", "H8", "I9", "J10",
		"K11", "L12", "M13", "N14", "O15", "P16", "Q17", "R18", "S19", "T20",
		"U21", "V22", "W23",
	} {
		skills = append(skills, s)
	}

	got := ExpandSkills(skills, "python backend ml role")

	assert.Len(t, got, types.MaxSkills)
	assert.Equal(t, "A1", got[0])
}

func TestExpandSkillsSkipsExistingCaseInsensitive(t *testing.T) {
	got := ExpandSkills([]string{"git", "agile"}, "")

	count := 0
	for _, s := range got {
		l := s
		if l == "Git" || l == "git" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, got, "Problem Solving")
}

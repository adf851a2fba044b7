package rewriting

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// roleSkillBuckets maps a role keyword to the skills worth adding for that
// role. Bucket order is fixed so expansion is deterministic.
var roleSkillBuckets = []struct {
	key    string
	skills []string
}{
	{"flutter", []string{"Flutter", "Dart", "Android", "iOS", "Firebase", "REST API", "Mobile Development"}},
	{"android", []string{"Android", "Kotlin", "Java", "Firebase", "REST API", "Material Design"}},
	{"frontend", []string{"HTML", "CSS", "JavaScript", "React", "Responsive Design", "UI/UX"}},
	{"backend", []string{"Node.js", "REST API", "SQL", "MongoDB", "Express", "Microservices"}},
	{"python", []string{"Python", "Django", "FastAPI", "Pandas", "NumPy", "SQL"}},
	{"ml", []string{"Machine Learning", "Python", "TensorFlow", "Scikit-learn", "Data Analysis"}},
	{"aiml", []string{"Python", "TensorFlow", "PyTorch", "NLP", "Machine Learning", "Deep Learning"}},
}

// professionalSkills are always offered regardless of role.
var professionalSkills = []string{"Git", "Agile", "Problem Solving", "Team Collaboration", "Communication"}

// ExpandSkills appends role-bucket and generic professional skills the list
// is missing, preserving the original order, and caps the result at the
// record skill limit.
func ExpandSkills(skills []string, targetRole string) []string {
	existing := make(map[string]bool, len(skills))
	for _, s := range skills {
		existing[strings.ToLower(s)] = true
	}

	allText := strings.ToLower(targetRole + " " + strings.Join(skills, " "))
	added := []string{}
	appendMissing := func(candidates []string) {
		for _, s := range candidates {
			if !existing[strings.ToLower(s)] {
				added = append(added, s)
			}
		}
	}

	for _, bucket := range roleSkillBuckets {
		if strings.Contains(allText, bucket.key) {
			appendMissing(bucket.skills)
		}
	}
	appendMissing(professionalSkills)

	return types.DedupeFold(append(append([]string{}, skills...), added...), types.MaxSkills)
}

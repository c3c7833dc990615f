package resume

import (
	"sort"
	"strings"

	"github.com/artem13815/cvparse/pkg/nlp"
)

// DefaultSkills is a small curated vocabulary of common technology terms.
// Extend with a real taxonomy as needed.
var DefaultSkills = []string{
	"python", "java", "c++", "c#", "javascript", "react", "node.js", "django",
	"flask", "sql", "postgresql", "mysql", "aws", "azure", "gcp", "docker",
	"kubernetes", "git", "linux", "nlp", "spacy", "pandas", "numpy", "tensorflow",
	"pytorch", "scikit-learn", "excel", "tableau", "power bi",
}

// ExtractSkills matches the skill vocabulary against the target text and
// returns the matched phrases, lowercased and sorted.
//
// Two methods are unioned: plain case-insensitive substring containment, and
// an optional whole-phrase token match when a matcher is supplied. Substring
// containment is intentionally loose ("pythonic" does contain "python"); the
// token matcher exists to catch multi-word phrases, not to tighten that.
func ExtractSkills(text string, skills []string, matcher nlp.PhraseMatcher) []string {
	if skills == nil {
		skills = DefaultSkills
	}
	textLower := strings.ToLower(text)
	found := make(map[string]struct{})

	if matcher != nil {
		for _, s := range matcher.Match(textLower, skills) {
			found[strings.ToLower(s)] = struct{}{}
		}
	}

	for _, s := range skills {
		if strings.Contains(textLower, strings.ToLower(s)) {
			found[strings.ToLower(s)] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

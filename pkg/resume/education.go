package resume

import (
	"regexp"
	"strings"
)

// eduKeywords match anywhere in a lowercased line, substring-style. The bare
// "bs"/"ms" abbreviations are intentionally loose, matching the rest of the
// heuristics here.
var eduKeywords = []*regexp.Regexp{
	regexp.MustCompile(`bachelor`),
	regexp.MustCompile(`master`),
	regexp.MustCompile(`b\.a\.`),
	regexp.MustCompile(`b\.sc\.`),
	regexp.MustCompile(`m\.sc\.`),
	regexp.MustCompile(`phd`),
	regexp.MustCompile(`b\.tech`),
	regexp.MustCompile(`m\.tech`),
	regexp.MustCompile(`bs`),
	regexp.MustCompile(`ms`),
	regexp.MustCompile(`mba`),
	regexp.MustCompile(`associate`),
	regexp.MustCompile(`high school`),
	regexp.MustCompile(`secondary school`),
}

var (
	yearRe     = regexp.MustCompile(`(19|20)\d{2}`)
	eduSplitRe = regexp.MustCompile(`,|-`)
)

// ExtractEducation scans the education section line by line. A line that
// contains a degree keyword yields one entry: the first comma/hyphen part is
// the degree, the second (if any) the institution, the first 19xx/20xx token
// the year. Other lines are skipped.
func ExtractEducation(sectionText string) []EducationEntry {
	var results []EducationEntry
	for _, line := range strings.Split(sectionText, "\n") {
		low := strings.ToLower(line)
		matched := false
		for _, k := range eduKeywords {
			if k.MatchString(low) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		year := yearRe.FindString(line)

		var parts []string
		for _, p := range eduSplitRe.Split(line, -1) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		degree := strings.TrimSpace(line)
		if len(parts) > 0 {
			degree = parts[0]
		}
		institution := ""
		if len(parts) > 1 {
			institution = parts[1]
		}
		results = append(results, EducationEntry{
			Degree:      degree,
			Institution: institution,
			Year:        year,
			Raw:         strings.TrimSpace(line),
		})
	}
	return results
}

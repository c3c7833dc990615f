package resume

import (
	"regexp"
	"strings"
)

// dateRangeRe recognizes the three date-token shapes: a month name followed
// by a year, a bare 19xx/20xx year, or the word "present".
var dateRangeRe = regexp.MustCompile(
	`(?i)((jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(tember)?|oct(ober)?|nov(ember)?|dec(ember)?)[\w.\s,-]*\d{4})|((19|20)\d{2})|(present)`,
)

// dateTokenRe decides which raw match groups count as date tokens.
var dateTokenRe = regexp.MustCompile(`(?i)(19|20)\d{2}|present`)

// ParseExperience walks the experience section's non-empty lines. A line
// containing a date token closes the open entry and starts a new one; other
// lines accumulate as details of the open entry (or start a dateless entry
// when none is open).
func ParseExperience(sectionText string) []ExperienceEntry {
	var entries []ExperienceEntry
	var cur *ExperienceEntry
	for _, raw := range strings.Split(sectionText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case dateRangeRe.MatchString(line):
			if cur != nil {
				entries = append(entries, *cur)
			}
			cur = &ExperienceEntry{TitleCompany: line, Details: []string{}}
		case cur == nil:
			// first line without a date: treat as title/company
			cur = &ExperienceEntry{TitleCompany: line, Details: []string{}}
		default:
			cur.Details = append(cur.Details, line)
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}

	// post-pass: pull date tokens out of the title line
	for i := range entries {
		matches := dateRangeRe.FindAllStringSubmatch(entries[i].TitleCompany, -1)
		dates := [][]string{}
		tokens := []string{}
		for _, m := range matches {
			groups := make([]string, len(m)-1)
			copy(groups, m[1:])
			dates = append(dates, groups)
			for _, g := range groups {
				if g != "" && dateTokenRe.MatchString(g) {
					tokens = append(tokens, g)
				}
			}
		}
		entries[i].Dates = dates
		entries[i].DateTokens = tokens
	}
	return entries
}

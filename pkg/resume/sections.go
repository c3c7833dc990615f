package resume

import (
	"regexp"
	"strings"
)

// Reserved section labels.
const (
	// SectionMain holds the whole text when no heading was recognized.
	SectionMain = "main"
	// SectionTop holds the text before the first recognized heading.
	SectionTop = "top"
)

// sectionHeaders is the fixed heading vocabulary, in priority order. A line
// is tested against each pattern in turn and opens a section on the first
// match.
var sectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`\bexperience\b`),
	regexp.MustCompile(`\bwork experience\b`),
	regexp.MustCompile(`\bprofessional experience\b`),
	regexp.MustCompile(`\beducation\b`),
	regexp.MustCompile(`\bskills\b`),
	regexp.MustCompile(`\btechnical skills\b`),
	regexp.MustCompile(`\bprojects\b`),
	regexp.MustCompile(`\bcertifications\b`),
	regexp.MustCompile(`\babout\b`),
	regexp.MustCompile(`\bsummary\b`),
	regexp.MustCompile(`\bobjective\b`),
}

// Sections is an ordered mapping from section label (the lowercased heading
// line) to the section body. A duplicate label overwrites the earlier body
// but keeps its original position, so "first matching label" lookups stay
// stable.
type Sections struct {
	order []string
	body  map[string]string
}

func newSections() *Sections {
	return &Sections{body: make(map[string]string)}
}

func (s *Sections) add(label, body string) {
	if _, ok := s.body[label]; !ok {
		s.order = append(s.order, label)
	}
	s.body[label] = body
}

// Get returns the body stored under the exact label.
func (s *Sections) Get(label string) (string, bool) {
	body, ok := s.body[label]
	return body, ok
}

// First returns the body of the first section (in insertion order) whose
// label contains the given substring.
func (s *Sections) First(substr string) (string, bool) {
	for _, label := range s.order {
		if strings.Contains(label, substr) {
			return s.body[label], true
		}
	}
	return "", false
}

// FirstAny is First over several substrings: the first label containing any
// of them wins.
func (s *Sections) FirstAny(substrs ...string) (string, bool) {
	for _, label := range s.order {
		for _, sub := range substrs {
			if strings.Contains(label, sub) {
				return s.body[label], true
			}
		}
	}
	return "", false
}

// Labels returns the section labels in insertion order.
func (s *Sections) Labels() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Map returns a plain label->body copy for serialization.
func (s *Sections) Map() map[string]string {
	out := make(map[string]string, len(s.body))
	for k, v := range s.body {
		out[k] = v
	}
	return out
}

func (s *Sections) Len() int { return len(s.order) }

// SplitSections partitions normalized text into labeled blocks delimited by
// recognized heading lines. With no recognized heading the whole text lands
// under SectionMain; text before the first heading lands under SectionTop
// when non-empty.
func SplitSections(text string) *Sections {
	lines := strings.Split(text, "\n")

	var headerIdxs []int
	for i, line := range lines {
		norm := strings.ToLower(strings.TrimSpace(line))
		for _, hdr := range sectionHeaders {
			if hdr.MatchString(norm) {
				headerIdxs = append(headerIdxs, i)
				break
			}
		}
	}

	sections := newSections()
	if len(headerIdxs) == 0 {
		sections.add(SectionMain, text)
		return sections
	}

	for idx, lineNo := range headerIdxs {
		start := lineNo + 1
		end := len(lines)
		if idx+1 < len(headerIdxs) {
			end = headerIdxs[idx+1]
		}
		label := strings.ToLower(strings.TrimSpace(lines[lineNo]))
		sections.add(label, strings.TrimSpace(strings.Join(lines[start:end], "\n")))
	}

	if top := strings.TrimSpace(strings.Join(lines[:headerIdxs[0]], "\n")); top != "" {
		sections.add(SectionTop, top)
	}
	return sections
}

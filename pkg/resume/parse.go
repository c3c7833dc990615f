package resume

import (
	"strings"

	"github.com/artem13815/cvparse/pkg/nlp"
)

// Parser runs the full text-to-structured-record pipeline: clean the raw
// text, split it into labeled sections and apply the per-section extractors.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	skills    []string
	matcher   nlp.PhraseMatcher
	extractor *Extractor
}

// Option configures a Parser.
type Option func(*Parser)

// WithSkills replaces the skill vocabulary.
func WithSkills(skills []string) Option {
	return func(p *Parser) { p.skills = skills }
}

// WithPhraseMatcher sets the optional whole-phrase matcher; nil degrades
// skill extraction to substring matching only.
func WithPhraseMatcher(m nlp.PhraseMatcher) Option {
	return func(p *Parser) { p.matcher = m }
}

// WithExtractor replaces the document-text provider used by ParseFile.
func WithExtractor(e *Extractor) Option {
	return func(p *Parser) { p.extractor = e }
}

// NewParser builds a Parser with the default vocabulary, the token phrase
// matcher and both file decoders installed.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		skills:    DefaultSkills,
		matcher:   nlp.NewTokenMatcher(),
		extractor: NewExtractor(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// summaryTopLines caps how much of the pre-header text doubles as a summary
// when the resume has no summary/objective section.
const summaryTopLines = 3

// ParseText turns resume text into a ParsedResume. Heuristic misses produce
// empty fields, never errors.
func (p *Parser) ParseText(raw string) *ParsedResume {
	text := CleanText(raw)
	sections := SplitSections(text)

	contact := ExtractContact(text)

	// Skills: prefer the skills section, fall back to the whole text.
	skillsText := text
	if body, ok := sections.First("skill"); ok && body != "" {
		skillsText = body
	}
	skills := ExtractSkills(skillsText, p.skills, p.matcher)

	education := []EducationEntry{}
	if body, ok := sections.First("educat"); ok && body != "" {
		if found := ExtractEducation(body); found != nil {
			education = found
		}
	}

	experience := []ExperienceEntry{}
	if body, ok := sections.First("experi"); ok && body != "" {
		if found := ParseExperience(body); found != nil {
			experience = found
		}
	}

	summary := ""
	if body, ok := sections.FirstAny("summary", "objective"); ok {
		summary = body
	}
	if summary == "" {
		if top, ok := sections.Get(SectionTop); ok {
			lines := strings.Split(top, "\n")
			if len(lines) > summaryTopLines {
				lines = lines[:summaryTopLines]
			}
			summary = strings.Join(lines, "\n")
		}
	}

	return &ParsedResume{
		Contact:     contact,
		Summary:     summary,
		Skills:      skills,
		Education:   education,
		Experience:  experience,
		RawSections: sections.Map(),
	}
}

// ParseFile extracts plain text from the file at path and parses it.
func (p *Parser) ParseFile(path string) (*ParsedResume, error) {
	text, err := p.extractor.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

// ParseBytes extracts plain text from in-memory file data (dispatching on
// the filename extension) and parses it.
func (p *Parser) ParseBytes(filename string, data []byte) (*ParsedResume, error) {
	text, err := p.extractor.ExtractText(filename, data)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

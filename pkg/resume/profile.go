package resume

import (
	"time"

	"github.com/google/uuid"
)

// ParsedResume is the structured record the heuristic pipeline produces from
// one resume text. It is immutable after ParseText returns it.
type ParsedResume struct {
	Contact     ContactInfo       `json:"contact"`
	Summary     string            `json:"summary"`
	Skills      []string          `json:"skills"`
	Education   []EducationEntry  `json:"education"`
	Experience  []ExperienceEntry `json:"experience"`
	RawSections map[string]string `json:"raw_sections"`
}

// ContactInfo holds contact details found anywhere in the document.
type ContactInfo struct {
	// Emails, deduplicated in first-seen order.
	Emails []string `json:"emails"`
	// Phones are surviving raw candidates (7-15 digits), set semantics,
	// returned sorted for determinism.
	Phones []string `json:"phones"`
	// LinkedIn URLs in document order, duplicates kept.
	LinkedIn []string `json:"linkedin"`
}

// EducationEntry is one degree line from the education section.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Raw         string `json:"raw"`
}

// ExperienceEntry is one job entry from the experience section.
type ExperienceEntry struct {
	// TitleCompany is the line that opened the entry.
	TitleCompany string `json:"title_company"`
	// Dates keeps the raw submatch groups of every date match in
	// TitleCompany, empty groups included.
	Dates [][]string `json:"dates"`
	// DateTokens are the cleaned year/month-phrase/present substrings.
	DateTokens []string `json:"date_tokens"`
	// Details are the bullet/continuation lines that followed.
	Details []string `json:"details"`
}

type ProfileStatus string

const (
	ProfileStatusPending ProfileStatus = "pending"
	ProfileStatusOK      ProfileStatus = "ok"
	ProfileStatusFailed  ProfileStatus = "failed"
)

// ProfileRecord is what we persist per resume profile.
type ProfileRecord struct {
	ResumeID  uuid.UUID     `json:"resumeId"`
	Status    ProfileStatus `json:"status"`
	Error     string        `json:"error"`
	Profile   ParsedResume  `json:"profile"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func emptyParsedResume() ParsedResume {
	return ParsedResume{
		Contact: ContactInfo{
			Emails:   []string{},
			Phones:   []string{},
			LinkedIn: []string{},
		},
		Skills:      []string{},
		Education:   []EducationEntry{},
		Experience:  []ExperienceEntry{},
		RawSections: map[string]string{},
	}
}

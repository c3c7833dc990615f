package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvparse/pkg/resume"
)

func sampleParsed() resume.ParsedResume {
	return resume.ParsedResume{
		Contact: resume.ContactInfo{
			Emails:   []string{"jane@example.com"},
			Phones:   []string{"+1-202-555-0134"},
			LinkedIn: []string{"linkedin.com/in/jane"},
		},
		Summary: "Data engineer & analyst",
		Skills:  []string{"python", "sql"},
		Education: []resume.EducationEntry{
			{Degree: "B.Sc.", Institution: "University X", Year: "2019", Raw: "B.Sc., University X, 2019"},
		},
		Experience: []resume.ExperienceEntry{
			{
				TitleCompany: "Engineer, 2019 - Present",
				Dates:        [][]string{},
				DateTokens:   []string{"2019", "Present"},
				Details:      []string{"Built pipelines", "Led reviews"},
			},
		},
		RawSections: map[string]string{"skills": "python, sql"},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleParsed())
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "{\n  \"contact\""), "expected two-space indent, got %q", s[:30])
	assert.False(t, strings.HasSuffix(s, "\n"), "trailing newline should be trimmed")
	// HTML escaping is off: & stays literal
	assert.Contains(t, s, "Data engineer & analyst")
	assert.NotContains(t, s, `\u0026`)
}

func TestJSONRoundTrip(t *testing.T) {
	orig := sampleParsed()

	data, err := ToJSON(orig)
	require.NoError(t, err)
	back, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, orig, back)
}

func TestRowsOrder(t *testing.T) {
	rows := Rows(sampleParsed())

	want := []Row{
		{Section: "contact", Key: "emails", Value: "jane@example.com"},
		{Section: "contact", Key: "phones", Value: "+1-202-555-0134"},
		{Section: "contact", Key: "linkedin", Value: "linkedin.com/in/jane"},
		{Section: "summary", Key: "summary", Value: "Data engineer & analyst"},
		{Section: "skills", Key: "skill", Value: "python"},
		{Section: "skills", Key: "skill", Value: "sql"},
		{Section: "education", Key: "B.Sc.", Value: "University X | 2019"},
		{Section: "experience", Key: "Engineer, 2019 - Present", Value: "2019, Present | Built pipelines; Led reviews"},
	}
	assert.Equal(t, want, rows)
}

func TestRowsEmptyRecord(t *testing.T) {
	rows := Rows(resume.ParsedResume{})

	// contact and summary rows are always present
	require.Len(t, rows, 4)
	assert.Equal(t, "contact", rows[0].Section)
	assert.Equal(t, "summary", rows[3].Section)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleParsed()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "section,key,value", lines[0])
	assert.Len(t, lines, 9) // header + 8 rows
	assert.Contains(t, lines[7], "education")
	// fields containing commas are quoted
	assert.Contains(t, buf.String(), `"Engineer, 2019 - Present"`)
}

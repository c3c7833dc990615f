package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/artem13815/cvparse/pkg/resume"
)

// Row is one {section, key, value} triple of the tabular export.
type Row struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

// Rows flattens a parsed resume in assembly order: contact rows, one summary
// row, one row per skill, one per education entry (keyed by degree), one per
// experience entry (keyed by the title/company line).
func Rows(r resume.ParsedResume) []Row {
	rows := []Row{
		{Section: "contact", Key: "emails", Value: strings.Join(r.Contact.Emails, ", ")},
		{Section: "contact", Key: "phones", Value: strings.Join(r.Contact.Phones, ", ")},
		{Section: "contact", Key: "linkedin", Value: strings.Join(r.Contact.LinkedIn, ", ")},
		{Section: "summary", Key: "summary", Value: r.Summary},
	}
	for _, s := range r.Skills {
		rows = append(rows, Row{Section: "skills", Key: "skill", Value: s})
	}
	for _, edu := range r.Education {
		rows = append(rows, Row{
			Section: "education",
			Key:     edu.Degree,
			Value:   edu.Institution + " | " + edu.Year,
		})
	}
	for _, exp := range r.Experience {
		rows = append(rows, Row{
			Section: "experience",
			Key:     exp.TitleCompany,
			Value:   strings.Join(exp.DateTokens, ", ") + " | " + strings.Join(exp.Details, "; "),
		})
	}
	return rows
}

// WriteCSV streams the tabular export with a section,key,value header.
func WriteCSV(w io.Writer, r resume.ParsedResume) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "key", "value"}); err != nil {
		return err
	}
	for _, row := range Rows(r) {
		if err := cw.Write([]string{row.Section, row.Key, row.Value}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package resume

import (
	"reflect"
	"testing"
)

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []EducationEntry
	}{
		{
			name: "comma separated degree line",
			in:   "Bachelor of Science, University X, 2019",
			want: []EducationEntry{{
				Degree:      "Bachelor of Science",
				Institution: "University X",
				Year:        "2019",
				Raw:         "Bachelor of Science, University X, 2019",
			}},
		},
		{
			name: "hyphen separated degree line",
			in:   "M.Sc. - ETH Zurich - 2015",
			want: []EducationEntry{{
				Degree:      "M.Sc.",
				Institution: "ETH Zurich",
				Year:        "2015",
				Raw:         "M.Sc. - ETH Zurich - 2015",
			}},
		},
		{
			name: "degree only",
			in:   "PhD in Physics",
			want: []EducationEntry{{
				Degree: "PhD in Physics",
				Raw:    "PhD in Physics",
			}},
		},
		{
			name: "lines without degree keywords are skipped",
			in:   "Dean's list award, 2018",
			want: nil,
		},
		{
			name: "one entry per matching line",
			in:   "Master of Arts, College Y, 2012\nirrelevant line\nBachelor, School Z",
			want: []EducationEntry{
				{Degree: "Master of Arts", Institution: "College Y", Year: "2012", Raw: "Master of Arts, College Y, 2012"},
				{Degree: "Bachelor", Institution: "School Z", Raw: "Bachelor, School Z"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEducation(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEducation(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

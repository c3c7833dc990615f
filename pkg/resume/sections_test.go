package resume

import (
	"reflect"
	"testing"
)

func TestSplitSectionsNoHeadings(t *testing.T) {
	text := "John Doe\njust some text without recognizable headings"
	s := SplitSections(text)

	if got := s.Labels(); !reflect.DeepEqual(got, []string{SectionMain}) {
		t.Fatalf("Labels = %v, want [main]", got)
	}
	body, ok := s.Get(SectionMain)
	if !ok || body != text {
		t.Errorf("Get(main) = %q, %v; want full text", body, ok)
	}
}

func TestSplitSections(t *testing.T) {
	text := "John Doe\nSoftware Engineer\n\nSummary\nSeasoned engineer.\n\nSkills\nPython, SQL\n\nExperience\nAcme Corp 2019 - 2021"
	s := SplitSections(text)

	wantLabels := []string{"summary", "skills", "experience", SectionTop}
	if got := s.Labels(); !reflect.DeepEqual(got, wantLabels) {
		t.Fatalf("Labels = %v, want %v", got, wantLabels)
	}

	tests := []struct {
		label string
		want  string
	}{
		{"summary", "Seasoned engineer."},
		{"skills", "Python, SQL"},
		{"experience", "Acme Corp 2019 - 2021"},
		{SectionTop, "John Doe\nSoftware Engineer"},
	}
	for _, tt := range tests {
		body, ok := s.Get(tt.label)
		if !ok || body != tt.want {
			t.Errorf("Get(%q) = %q, %v; want %q", tt.label, body, ok, tt.want)
		}
	}
}

func TestSplitSectionsDuplicateLabel(t *testing.T) {
	// The later body wins, the earlier position is kept.
	s := SplitSections("Skills\nPython\n\nSkills\nGo")

	if got := s.Labels(); !reflect.DeepEqual(got, []string{"skills"}) {
		t.Fatalf("Labels = %v, want [skills]", got)
	}
	if body, _ := s.Get("skills"); body != "Go" {
		t.Errorf("Get(skills) = %q, want %q", body, "Go")
	}
}

func TestSectionsFirst(t *testing.T) {
	s := SplitSections("Technical Skills\nGo\n\nEducation\nB.Sc.")

	body, ok := s.First("skill")
	if !ok || body != "Go" {
		t.Errorf("First(skill) = %q, %v; want Go", body, ok)
	}
	if _, ok := s.First("certif"); ok {
		t.Error("First(certif) = true, want false")
	}
	body, ok = s.FirstAny("summary", "educat")
	if !ok || body != "B.Sc." {
		t.Errorf("FirstAny = %q, %v; want B.Sc.", body, ok)
	}
}

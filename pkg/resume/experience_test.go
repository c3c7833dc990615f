package resume

import (
	"reflect"
	"testing"
)

func TestParseExperience(t *testing.T) {
	section := "Senior Engineer at Acme, Jan 2019 - Present\nBuilt data pipelines\nLed a team of four\n\nAnalyst, 2016 - 2018\nReported quarterly metrics"

	entries := ParseExperience(section)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.TitleCompany != "Senior Engineer at Acme, Jan 2019 - Present" {
		t.Errorf("TitleCompany = %q", first.TitleCompany)
	}
	if want := []string{"Built data pipelines", "Led a team of four"}; !reflect.DeepEqual(first.Details, want) {
		t.Errorf("Details = %v, want %v", first.Details, want)
	}
	if want := []string{"Jan 2019", "Present"}; !reflect.DeepEqual(first.DateTokens, want) {
		t.Errorf("DateTokens = %v, want %v", first.DateTokens, want)
	}

	second := entries[1]
	if second.TitleCompany != "Analyst, 2016 - 2018" {
		t.Errorf("TitleCompany = %q", second.TitleCompany)
	}
	if want := []string{"2016", "2018"}; !reflect.DeepEqual(second.DateTokens, want) {
		t.Errorf("DateTokens = %v, want %v", second.DateTokens, want)
	}
	if want := []string{"Reported quarterly metrics"}; !reflect.DeepEqual(second.Details, want) {
		t.Errorf("Details = %v, want %v", second.Details, want)
	}
}

func TestParseExperienceDatelessEntry(t *testing.T) {
	entries := ParseExperience("Freelance consulting\nVarious clients")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.TitleCompany != "Freelance consulting" {
		t.Errorf("TitleCompany = %q", e.TitleCompany)
	}
	if len(e.DateTokens) != 0 || len(e.Dates) != 0 {
		t.Errorf("expected no date tokens, got dates=%v tokens=%v", e.Dates, e.DateTokens)
	}
	if want := []string{"Various clients"}; !reflect.DeepEqual(e.Details, want) {
		t.Errorf("Details = %v, want %v", e.Details, want)
	}
}

func TestParseExperienceEmpty(t *testing.T) {
	if entries := ParseExperience(""); len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestParseExperienceDatesKeepRawGroups(t *testing.T) {
	entries := ParseExperience("Developer, March 2020")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(entries[0].Dates) != 1 {
		t.Fatalf("got %d date matches, want 1", len(entries[0].Dates))
	}
	groups := entries[0].Dates[0]
	if groups[0] != "March 2020" || groups[1] != "March" {
		t.Errorf("groups = %v, want March 2020 / March leading", groups)
	}
	if want := []string{"March 2020"}; !reflect.DeepEqual(entries[0].DateTokens, want) {
		t.Errorf("DateTokens = %v, want %v", entries[0].DateTokens, want)
	}
}

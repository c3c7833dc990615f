package resume

import (
	"reflect"
	"testing"
)

func TestExtractContactEmails(t *testing.T) {
	text := "Reach me at jane@example.com or jane@example.com, work: j.doe@corp.co.uk"
	got := ExtractContact(text).Emails
	want := []string{"jane@example.com", "j.doe@corp.co.uk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Emails = %v, want %v", got, want)
	}
}

func TestExtractContactPhoneDigitFilter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int // surviving candidates
	}{
		{"six digits rejected", "123456", 0},
		{"seven digits accepted", "1234567", 1},
		{"fifteen digits accepted", "123456789012345", 1},
		{"sixteen digits rejected", "1234567890123456", 0},
		{"formatted number accepted", "+1-202-555-0134", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContact(tt.in).Phones
			if len(got) != tt.want {
				t.Errorf("Phones(%q) = %v, want %d candidates", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractContactPhonesSorted(t *testing.T) {
	got := ExtractContact("phone: 9998887777, alt: 1112223333").Phones
	want := []string{"1112223333", "9998887777"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Phones = %v, want %v", got, want)
	}
}

func TestExtractContactLinkedIn(t *testing.T) {
	text := "see linkedin.com/in/jdoe and https://www.linkedin.com/in/jane-doe"
	got := ExtractContact(text).LinkedIn
	want := []string{"linkedin.com/in/jdoe", "https://www.linkedin.com/in/jane-doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinkedIn = %v, want %v", got, want)
	}
}

func TestExtractContactEmptyFieldsAreNonNil(t *testing.T) {
	c := ExtractContact("no contact details here")
	if c.Emails == nil || c.Phones == nil || c.LinkedIn == nil {
		t.Errorf("expected non-nil empty slices, got %+v", c)
	}
}

package resume

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	// phoneRe is deliberately loose; the digit-count filter below decides
	// what survives.
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{2,4}\)?[-.\s]?)?[\d\-.\s]{6,15}`)
	linkedinRe = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/[\w\-/]+`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

const (
	phoneMinDigits = 7
	phoneMaxDigits = 15
)

// ExtractContact scans the entire text (not a single section) for emails,
// phone candidates and LinkedIn URLs.
func ExtractContact(text string) ContactInfo {
	emails := []string{}
	seen := make(map[string]struct{})
	for _, m := range emailRe.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		emails = append(emails, m)
	}

	phoneSet := make(map[string]struct{})
	for _, m := range phoneRe.FindAllString(text, -1) {
		candidate := strings.TrimSpace(m)
		digits := nonDigitRe.ReplaceAllString(candidate, "")
		if len(digits) >= phoneMinDigits && len(digits) <= phoneMaxDigits {
			phoneSet[candidate] = struct{}{}
		}
	}
	phones := make([]string, 0, len(phoneSet))
	for p := range phoneSet {
		phones = append(phones, p)
	}
	sort.Strings(phones)

	linkedin := []string{}
	linkedin = append(linkedin, linkedinRe.FindAllString(text, -1)...)

	return ContactInfo{Emails: emails, Phones: phones, LinkedIn: linkedin}
}

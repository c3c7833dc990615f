package resume

import (
	"regexp"
	"strings"
)

var (
	reSpaceRuns = regexp.MustCompile(`[ \t]+`)
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
	reControl   = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]+`)
)

// CleanText normalizes raw document text before segmentation: carriage
// returns become newlines, space/tab runs collapse to one space, runs of
// three or more newlines collapse to two, control characters are stripped
// and the result is trimmed. Idempotent.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reSpaceRuns.ReplaceAllString(text, " ")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	text = reControl.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

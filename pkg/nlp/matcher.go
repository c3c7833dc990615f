package nlp

// PhraseMatcher finds which of the given phrases occur in a text as exact
// token sequences. Implementations must be safe for concurrent use: matching
// is read-only.
type PhraseMatcher interface {
	Match(text string, phrases []string) []string
}

// TokenMatcher is the default PhraseMatcher. It normalizes both sides and
// requires the whole phrase to appear as contiguous tokens, so "java" does not
// match inside "javascript" the way plain substring search would.
type TokenMatcher struct{}

func NewTokenMatcher() *TokenMatcher { return &TokenMatcher{} }

func (m *TokenMatcher) Match(text string, phrases []string) []string {
	normalized := Normalize(text)
	var found []string
	for _, p := range phrases {
		np := Normalize(p)
		if np == "" {
			continue
		}
		if ContainsPhrase(normalized, np) {
			found = append(found, p)
		}
	}
	return found
}

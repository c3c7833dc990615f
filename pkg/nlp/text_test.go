package nlp

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Node.JS, React!", "node js react"},
		{"  C++  and   C#  ", "c and c"},
		{"REST-API", "rest api"},
		{"", ""},
		{"---", ""},
		{"Go 1.25", "go 1 25"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	if got := Tokens(""); got != nil {
		t.Errorf("Tokens(\"\") = %v, want nil", got)
	}
	want := []string{"rest", "api", "design"}
	if got := Tokens("rest api design"); !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   bool
	}{
		{"built a rest api service", "rest api", true},
		{"built rest apis for clients", "rest api", false}, // whole tokens only
		{"java developer", "java", true},
		{"javascript developer", "java", false},
		{"anything", "", false},
	}
	for _, tt := range tests {
		if got := ContainsPhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("ContainsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}

func TestTokenMatcher(t *testing.T) {
	m := NewTokenMatcher()
	phrases := []string{"java", "javascript", "node.js", "power bi"}
	got := m.Match("Experienced in JavaScript and Node.js; builds Power-BI dashboards", phrases)
	want := []string{"javascript", "node.js", "power bi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %v, want %v", got, want)
	}
}

package resume

import (
	"reflect"
	"testing"

	"github.com/artem13815/cvparse/pkg/nlp"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		skills  []string
		matcher nlp.PhraseMatcher
		want    []string
	}{
		{
			name: "defaults, sorted",
			text: "Experienced with Python, SQL and Docker.",
			want: []string{"docker", "python", "sql"},
		},
		{
			name: "case insensitive",
			text: "PYTHON and TABLEAU",
			want: []string{"python", "tableau"},
		},
		{
			name:   "substring containment is loose",
			text:   "writes pythonic code",
			skills: []string{"python"},
			want:   []string{"python"},
		},
		{
			name:   "no matches yields empty slice",
			text:   "fluent in french",
			skills: []string{"python"},
			want:   []string{},
		},
		{
			name:    "token matcher catches hyphenated phrase",
			text:    "built Power-BI dashboards",
			skills:  []string{"power bi"},
			matcher: nlp.NewTokenMatcher(),
			want:    []string{"power bi"},
		},
		{
			name:   "substring alone misses hyphenated phrase",
			text:   "built Power-BI dashboards",
			skills: []string{"power bi"},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text, tt.skills, tt.matcher)
			if got == nil {
				t.Fatal("ExtractSkills returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSkills = %v, want %v", got, tt.want)
			}
		})
	}
}

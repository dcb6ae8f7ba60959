package render

import (
	"strings"
	"testing"

	"github.com/jondoglover/udtube/conllu"
)

func TestSentenceNoColor(t *testing.T) {
	r := NewRenderer()
	r.HasColor = false

	s := conllu.ParseString("1\tThe\tthe\n2\tdog\tdog")
	if got := r.Sentence(s, map[string]bool{"dog": true}); got != "The dog" {
		t.Errorf("expected 'The dog', got %q", got)
	}
}

func TestSentenceHighlight(t *testing.T) {
	r := NewRenderer()

	s := conllu.ParseString("1\tThe\tthe\n2\tdog\tdog")
	got := r.Sentence(s, map[string]bool{"dog": true})
	if !strings.Contains(got, Yellow256+"dog"+Off) {
		t.Errorf("expected highlighted dog, got %q", got)
	}
	if strings.Contains(got, Yellow256+"The") {
		t.Errorf("unexpected highlight on The: %q", got)
	}
}

func TestTable(t *testing.T) {
	r := NewRenderer()

	s := conllu.ParseString("1\tdog\tdog\tNOUN\t_\t_\t0\troot")
	got := r.Table(s)
	if !strings.HasPrefix(got, "1   dog") {
		t.Errorf("unexpected table line: %q", got)
	}
	if !strings.Contains(got, "root") {
		t.Errorf("expected deprel column, got %q", got)
	}
}

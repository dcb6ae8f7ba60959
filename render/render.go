package render

import (
	"strings"

	"github.com/jondoglover/udtube/conllu"
)

var (
	Yellow    = "\033[0;33m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

type Renderer struct {
	HasColor bool
}

func NewRenderer() *Renderer {
	return &Renderer{HasColor: true}
}

// Sentence renders the surface text of s, coloring tokens whose lemma is
// in highlight.
func (r *Renderer) Sentence(s conllu.Sentence, highlight map[string]bool) string {
	words := make([]string, 0, s.Len())
	for _, tok := range s.Tokens {
		word := tok.Form()
		if r.HasColor && highlight[tok.Lemma()] {
			word = Yellow256 + word + Off
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}

// Table renders one aligned line per token with the most useful columns,
// for close inspection of a single sentence.
func (r *Renderer) Table(s conllu.Sentence) string {
	var b strings.Builder
	for _, tok := range s.Tokens {
		b.WriteString(pad(tok.ID(), 4))
		b.WriteString(pad(tok.Form(), 20))
		b.WriteString(pad(tok.Lemma(), 20))
		b.WriteString(pad(tok.UPos(), 8))
		b.WriteString(pad(tok.Head(), 4))
		b.WriteString(tok.Deprel())
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

package conllu

import "strings"

// Sentence is the parsed representation of one annotated sentence: an
// ordered sequence of tokens plus the ordered comment metadata that
// preceded them.
type Sentence struct {
	Tokens   []Token
	Metadata *Metadata
}

func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Token returns the i-th token of the sentence.
func (s Sentence) Token(i int) Token {
	return s.Tokens[i]
}

// Text returns the surface forms joined by single spaces.
func (s Sentence) Text() string {
	forms := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		forms[i] = t.Form()
	}
	return strings.Join(forms, " ")
}

// Serialize renders the canonical textual form of the sentence: one line
// per metadata entry in recorded order, then one tab-separated line per
// token with unset fields rendered as "_". The output ends with a newline
// and carries no blank separator line; callers writing a multi-sentence
// document insert the blank line between units themselves.
func (s Sentence) Serialize() string {
	var lines []string
	if s.Metadata != nil {
		for _, e := range s.Metadata.Entries() {
			if e.HasValue && e.Value != "" {
				lines = append(lines, "# "+e.Key+" = "+e.Value)
			} else {
				lines = append(lines, "# "+e.Key)
			}
		}
	}
	for _, t := range s.Tokens {
		cols := make([]string, NumFields)
		for i, name := range FieldNames {
			cols[i] = t.Field(name)
		}
		lines = append(lines, strings.Join(cols, "\t"))
	}
	return strings.Join(lines, "\n") + "\n"
}

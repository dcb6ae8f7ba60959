package conllu

// FieldNames is the canonical column order of a CoNLL-U token line.
// See https://universaldependencies.org/format.html.
var FieldNames = []string{
	"id",
	"form",
	"lemma",
	"upos",
	"xpos",
	"feats",
	"head",
	"deprel",
	"deps",
	"misc",
}

// NumFields is the number of columns of a token line.
const NumFields = 10

// Placeholder is the rendering of an unset field.
const Placeholder = "_"

// Token is one annotated word. Only the keys in FieldNames are ever
// populated by parsing; a key missing from the map means the field was
// absent on the input line.
type Token map[string]string

// Field returns the value of the named field, or the "_" placeholder if
// the field is unset.
func (t Token) Field(name string) string {
	if v, ok := t[name]; ok {
		return v
	}
	return Placeholder
}

func (t Token) ID() string     { return t["id"] }
func (t Token) Form() string   { return t["form"] }
func (t Token) Lemma() string  { return t["lemma"] }
func (t Token) UPos() string   { return t["upos"] }
func (t Token) Head() string   { return t["head"] }
func (t Token) Deprel() string { return t["deprel"] }

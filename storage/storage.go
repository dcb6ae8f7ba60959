package storage

import (
	"github.com/jondoglover/udtube/conllu"
)

// Cursor for paginated lemma-based queries. It is the rowid of the last
// sentence returned; passing it back resumes after that sentence.
type Cursor int64

// Treebank is the stored metadata of one imported corpus file.
type Treebank struct {
	Id           int
	Name         string
	NumSentences int
}

// Hit is one sentence returned by a lemma query.
type Hit struct {
	RowID      int64
	TreebankId int
	Position   int
	Sentence   conllu.Sentence
}

// CorpusReader defines read operations for corpus storage.
type CorpusReader interface {
	// List returns the metadata of all stored treebanks.
	List() ([]Treebank, error)

	// Sentences calls fn for every sentence of the treebank, in source
	// order, with its zero-based position.
	Sentences(treebankId int, fn func(pos int, s conllu.Sentence) error) error

	// FindByLemma calls fn for sentences containing ALL given lemmas,
	// resuming after the given cursor. Returns the new cursor; a cursor
	// equal to the one passed in means the result set is exhausted.
	FindByLemma(lemmas []string, after Cursor, limit int, fn func(Hit) error) (Cursor, error)

	// Lemmas returns the unique lemmas of the corpus, sorted. If pattern
	// is not empty, only lemmas containing it are returned.
	Lemmas(pattern string) ([]string, error)
}

// CorpusWriter defines write operations for corpus storage.
type CorpusWriter interface {
	// Write persists a treebank and its sentences under the given name.
	Write(name string, sentences []conllu.Sentence) error
}

// CorpusRepository combines read and write operations.
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}

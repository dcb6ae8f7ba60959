package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jondoglover/udtube/conllu"
	"github.com/jondoglover/udtube/storage"
)

// Store reads treebanks straight from a directory of .conllu files. Every
// file is one treebank; sentences are streamed on demand, nothing is
// cached. Lemma queries scan the whole directory, the rowid of a hit is
// its global sentence ordinal across files in name order.
type Store struct {
	dir   string
	names []string
}

var _ storage.CorpusReader = (*Store)(nil)

func NewStore(dir string) (*Store, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	s := &Store{dir: dir}
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".conllu" {
			s.names = append(s.names, file.Name())
		}
	}
	sort.Strings(s.names)

	return s, nil
}

func (s *Store) List() ([]storage.Treebank, error) {
	treebanks := make([]storage.Treebank, 0, len(s.names))
	for id, name := range s.names {
		count := 0
		err := s.scan(id, func(int, conllu.Sentence) error {
			count++
			return nil
		})
		if err != nil {
			return nil, err
		}
		treebanks = append(treebanks, storage.Treebank{Id: id, Name: name, NumSentences: count})
	}
	return treebanks, nil
}

func (s *Store) Sentences(treebankId int, fn func(pos int, sent conllu.Sentence) error) error {
	return s.scan(treebankId, fn)
}

func (s *Store) scan(treebankId int, fn func(pos int, sent conllu.Sentence) error) error {
	if treebankId < 0 || treebankId >= len(s.names) {
		return fmt.Errorf("treebank id out of range: %d", treebankId)
	}

	f, err := conllu.Open(filepath.Join(s.dir, s.names[treebankId]))
	if err != nil {
		return err
	}
	defer f.Close()

	for pos := 0; ; pos++ {
		sent, err := f.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(pos, sent); err != nil {
			return err
		}
	}
}

func (s *Store) FindByLemma(lemmas []string, after storage.Cursor, limit int, fn func(storage.Hit) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	cursor := after
	returned := 0
	ordinal := int64(0)

	for id := range s.names {
		err := s.scan(id, func(pos int, sent conllu.Sentence) error {
			ordinal++
			if ordinal <= int64(after) || returned >= limit {
				return nil
			}
			if !hasAllLemmas(sent, lemmas) {
				return nil
			}
			cursor = storage.Cursor(ordinal)
			returned++
			return fn(storage.Hit{RowID: ordinal, TreebankId: id, Position: pos, Sentence: sent})
		})
		if err != nil {
			return after, err
		}
	}

	return cursor, nil
}

func (s *Store) Lemmas(pattern string) ([]string, error) {
	unique := map[string]bool{}
	for id := range s.names {
		err := s.scan(id, func(_ int, sent conllu.Sentence) error {
			for _, tok := range sent.Tokens {
				lemma := tok.Lemma()
				if lemma == "" || lemma == conllu.Placeholder {
					continue
				}
				if pattern != "" && !strings.Contains(lemma, pattern) {
					continue
				}
				unique[lemma] = true
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	lemmas := make([]string, 0, len(unique))
	for lemma := range unique {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)
	return lemmas, nil
}

func (s *Store) Write(name string, sentences []conllu.Sentence) error {
	return fmt.Errorf("read-only storage")
}

func hasAllLemmas(sent conllu.Sentence, lemmas []string) bool {
	for _, lemma := range lemmas {
		found := false
		for _, tok := range sent.Tokens {
			if tok.Lemma() == lemma {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"github.com/jondoglover/udtube/conllu"
	"github.com/jondoglover/udtube/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Store persists treebanks in SQLite. Sentences are stored as their
// canonical serialized text and re-parsed on read, so the database is
// also a round-trip of the wire format.
type Store struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*Store)(nil)

func NewStore(pool *sqlitex.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) List() ([]storage.Treebank, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var treebanks []storage.Treebank
	query := "SELECT t.id, t.name, COUNT(s.id) FROM treebanks t " +
		"LEFT JOIN sentences s ON s.treebank_id = t.id GROUP BY t.id ORDER BY t.name"
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			treebanks = append(treebanks, storage.Treebank{
				Id:           stmt.ColumnInt(0),
				Name:         stmt.ColumnText(1),
				NumSentences: stmt.ColumnInt(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return treebanks, nil
}

func (s *Store) Sentences(treebankId int, fn func(pos int, sent conllu.Sentence) error) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT position, data FROM sentences WHERE treebank_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{treebankId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return fn(stmt.ColumnInt(0), conllu.ParseString(stmt.ColumnText(1)))
		},
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("treebank not found: %d", treebankId)
	}
	return nil
}

func (s *Store) FindByLemma(lemmas []string, after storage.Cursor, limit int, fn func(storage.Hit) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer s.pool.Put(conn)

	// Build the query dynamically based on the number of lemmas. INTERSECT
	// keeps only sentence ids that contain ALL lemmas and guarantees a
	// unique id set.
	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_id FROM sentence_lemmas WHERE lemma = ? AND sentence_id > ?")
		args = append(args, lemma, int64(after))
	}
	queryBuilder.WriteString(" ORDER BY sentence_id LIMIT ?")
	args = append(args, limit)

	var ids []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ids = append(ids, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}

	if len(ids) == 0 {
		return after, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = fmt.Sprintf("%d", id)
	}
	query := fmt.Sprintf("SELECT id, treebank_id, position, data FROM sentences WHERE id IN (%s) ORDER BY id",
		strings.Join(idStrings, ","))

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}
			return fn(storage.Hit{
				RowID:      rowID,
				TreebankId: stmt.ColumnInt(1),
				Position:   stmt.ColumnInt(2),
				Sentence:   conllu.ParseString(stmt.ColumnText(3)),
			})
		},
	})
	if err != nil {
		return after, err
	}

	return newCursor, nil
}

func (s *Store) Lemmas(pattern string) ([]string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	query := "SELECT DISTINCT lemma FROM sentence_lemmas ORDER BY lemma"
	var args []interface{}
	if pattern != "" {
		query = "SELECT DISTINCT lemma FROM sentence_lemmas WHERE lemma LIKE ? ORDER BY lemma"
		args = append(args, "%"+pattern+"%")
	}

	var lemmas []string
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			lemmas = append(lemmas, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return lemmas, nil
}

func (s *Store) Write(name string, sentences []conllu.Sentence) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	// Start transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO treebanks (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert treebank: %w", err)
	}
	treebankID := conn.LastInsertRowID()

	for pos, sent := range sentences {
		err = sqlitex.Execute(conn, "INSERT INTO sentences (treebank_id, position, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{treebankID, pos, sent.Serialize()},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentID := conn.LastInsertRowID()

		uniqueLemmas := map[string]bool{}
		for _, tok := range sent.Tokens {
			lemma := tok.Lemma()
			if lemma == "" || lemma == conllu.Placeholder {
				continue
			}
			uniqueLemmas[lemma] = true
		}

		for lemma := range uniqueLemmas {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_id) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{lemma, sentID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return nil
}

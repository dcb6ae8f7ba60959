package conllu

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single input line. CoNLL-U lines are short, but
// misc/deps columns of web corpora can get large.
const maxLineSize = 1024 * 1024

// Reader is a forward-only cursor over a multi-sentence CoNLL-U stream.
// Each call to Next consumes lines until one sentence is complete. The
// cursor holds the in-progress metadata and token accumulators between
// calls; it never rewinds the underlying source.
type Reader struct {
	sc     *bufio.Scanner
	meta   *Metadata
	tokens []Token
	done   bool
}

// NewReader returns a cursor reading sentences from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc, meta: NewMetadata()}
}

// Next returns the next sentence of the stream, or io.EOF when the source
// is exhausted. Sentences are delimited by blank lines; the final
// sentence does not need a trailing blank line. Consecutive or leading
// blank lines are skipped. Any error from the underlying source is
// returned as is.
func (r *Reader) Next() (Sentence, error) {
	if r.done {
		return Sentence{}, io.EOF
	}
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			if len(r.tokens) > 0 || r.meta.Len() > 0 {
				return r.emit(), nil
			}
			continue
		}
		if key, value, hasValue, ok := parseComment(line); ok {
			if hasValue {
				r.meta.Set(key, value)
			} else {
				r.meta.SetFlag(key)
			}
			continue
		}
		r.tokens = append(r.tokens, parseToken(line))
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return Sentence{}, err
	}
	if len(r.tokens) > 0 || r.meta.Len() > 0 {
		return r.emit(), nil
	}
	return Sentence{}, io.EOF
}

// emit hands off the accumulators and resets the cursor for the next
// sentence. The returned sentence owns its data exclusively.
func (r *Reader) emit() Sentence {
	s := Sentence{Tokens: r.tokens, Metadata: r.meta}
	r.tokens = nil
	r.meta = NewMetadata()
	return s
}

// File is a Reader over an opened file. The caller is responsible for
// releasing the file with Close, typically with defer right after Open,
// which also covers abandoning the iteration early.
type File struct {
	*Reader
	f *os.File
}

// Open opens path for streaming sentence reads.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{Reader: NewReader(f), f: f}, nil
}

// Close releases the underlying file. It is safe to call more than once.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

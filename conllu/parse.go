// Package conllu reads and writes the CoNLL-U treebank format: one token
// per line in ten tab-separated columns, sentences delimited by blank
// lines, optionally preceded by `# key = value` comment metadata.
//
// Parsing is deliberately tolerant. Short token lines leave the trailing
// fields unset, surplus columns are dropped, and a `#` line that does not
// match the comment shape degrades to a token line. Only I/O failures are
// reported as errors.
package conllu

import (
	"bufio"
	"strings"
)

// parseComment attempts to read a stripped line as a metadata comment:
// a `#` followed by whitespace, a key, and optionally the first
// ` = `-style separator (a whitespace run, `=`, a whitespace run)
// followed by the value. Returns ok false when the line is not a comment,
// in which case it falls through to token parsing.
func parseComment(line string) (key, value string, hasValue, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return "", "", false, false
	}
	rest := strings.TrimLeft(line[1:], " \t")
	if rest == line[1:] || rest == "" {
		// no whitespace after '#', or nothing after it
		return "", "", false, false
	}
	for j := 1; j < len(rest); j++ {
		if !isSpace(rest[j]) {
			continue
		}
		k := j
		for k < len(rest) && isSpace(rest[k]) {
			k++
		}
		if k >= len(rest) || rest[k] != '=' {
			continue
		}
		m := k + 1
		for m < len(rest) && isSpace(rest[m]) {
			m++
		}
		if m == k+1 {
			// '=' not followed by whitespace, keep scanning
			continue
		}
		return rest[:j], rest[m:], true, true
	}
	return rest, "", false, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// parseToken maps the tab-separated values of a line positionally onto
// the canonical field order. Missing trailing columns stay unset and
// surplus columns are dropped.
func parseToken(line string) Token {
	values := strings.Split(line, "\t")
	t := make(Token, NumFields)
	for i, name := range FieldNames {
		if i >= len(values) {
			break
		}
		t[name] = values[i]
	}
	return t
}

// ParseString parses a single sentence from a string holding exactly that
// sentence's lines (metadata and tokens, no blank-line separators). Every
// line is classified as either metadata or token.
func ParseString(buffer string) Sentence {
	meta := NewMetadata()
	var tokens []Token
	sc := bufio.NewScanner(strings.NewReader(buffer))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if key, value, hasValue, ok := parseComment(line); ok {
			if hasValue {
				meta.Set(key, value)
			} else {
				meta.SetFlag(key)
			}
			continue
		}
		tokens = append(tokens, parseToken(line))
	}
	return Sentence{Tokens: tokens, Metadata: meta}
}

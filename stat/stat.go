package stat

import (
	"github.com/jondoglover/udtube/conllu"
)

type Handler struct {
	numSentences int
	numTokens    int
	perSentence  map[int]int
	upos         map[string]int
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int

	// TokensPerSentenceDis maps sentence length to occurrence count.
	TokensPerSentenceDis map[int]int

	// UposDis maps UPOS tag to occurrence count.
	UposDis map[string]int
}

func NewHandler() *Handler {
	return &Handler{
		perSentence: map[int]int{},
		upos:        map[string]int{},
	}
}

// Add aggregates one sentence into the running statistics.
func (h *Handler) Add(s conllu.Sentence) {
	h.numSentences++
	h.numTokens += s.Len()
	h.perSentence[s.Len()]++

	for _, tok := range s.Tokens {
		if upos := tok.UPos(); upos != "" && upos != conllu.Placeholder {
			h.upos[upos]++
		}
	}
}

func (h *Handler) Get() Stats {
	stats := Stats{
		NumSentences:         h.numSentences,
		NumTokens:            h.numTokens,
		TokensPerSentenceDis: h.perSentence,
		UposDis:              h.upos,
	}
	if h.numSentences > 0 {
		stats.TokensPerSentenceMean = h.numTokens / h.numSentences
	}
	return stats
}

package browse

import (
	"fmt"
	"strings"

	"github.com/jondoglover/udtube/render"
	"github.com/jondoglover/udtube/storage"

	"github.com/c-bata/go-prompt"
)

const (
	completionThreshold = 2

	// batchSize is the number of candidates fetched per storage call.
	batchSize = 500

	// limit is the maximum number of sentences shown per query.
	limit = 2000
)

type Handler struct {
	Repo     storage.CorpusReader
	Renderer *render.Renderer
}

func NewHandler(repo storage.CorpusReader, r *render.Renderer) *Handler {
	return &Handler{
		Repo:     repo,
		Renderer: r,
	}
}

// Run starts the interactive lemma-lookup loop. Input lines are
// whitespace-separated lemmas; sentences containing all of them are
// printed with the matched words highlighted.
func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+X: Toggle color, 🔧 quit")

	lemmas, err := h.Repo.Lemmas("")
	if err != nil {
		return err
	}

	treebanks, err := h.Repo.List()
	if err != nil {
		return err
	}
	names := make(map[int]string)
	for _, tb := range treebanks {
		names[tb.Id] = tb.Name
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔎 ", h.completer(lemmas),
			prompt.OptionTitle("udtube browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Println("Color set to " + fmt.Sprintf("%t", h.Renderer.HasColor))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		query := strings.Fields(in)
		if len(query) == 0 {
			continue
		}

		if err := h.lookup(query, names); err != nil {
			fmt.Printf("❌ %s\n", err)
		}
	}
}

func (h *Handler) lookup(lemmas []string, names map[int]string) error {
	highlight := make(map[string]bool, len(lemmas))
	for _, lemma := range lemmas {
		highlight[lemma] = true
	}

	cursor := storage.Cursor(0)
	shown := 0
	for {
		newCursor, err := h.Repo.FindByLemma(lemmas, cursor, batchSize, func(hit storage.Hit) error {
			shown++
			text := h.Renderer.Sentence(hit.Sentence, highlight)
			fmt.Printf("📖 %s %d %s\n", names[hit.TreebankId], hit.Position, text)
			return nil
		})
		if err != nil {
			return err
		}
		if newCursor == cursor {
			break
		}
		if shown >= limit {
			break
		}
		cursor = newCursor
	}

	if shown == 0 {
		fmt.Println("no matches")
	}
	return nil
}

func (h *Handler) completer(lemmas []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return suggestLemmas(in.GetWordBeforeCursor(), lemmas)
	}
}

func suggestLemmas(word string, lemmas []string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if len(word) < completionThreshold {
		return s
	}

	for _, lemma := range lemmas {
		if strings.HasPrefix(lemma, word) {
			s = append(s, prompt.Suggest{Text: lemma})
		}
	}

	return s
}

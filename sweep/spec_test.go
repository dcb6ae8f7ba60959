package sweep

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func gridSpec() Spec {
	return Spec{
		Method: MethodGrid,
		Parameters: map[string]Parameter{
			"model.lr":           {Values: []any{0.001, 0.01}},
			"trainer.max_epochs": {Values: []any{5, 10, 20}},
		},
	}
}

func TestGridProduct(t *testing.T) {
	runs, err := gridSpec().Runs(0, nil)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 6 {
		t.Fatalf("expected 6 runs, got %d", len(runs))
	}

	// parameter names are sorted, so model.lr varies slowest
	if runs[0]["model.lr"] != 0.001 || runs[0]["trainer.max_epochs"] != 5 {
		t.Errorf("unexpected first run: %v", runs[0])
	}
	if runs[5]["model.lr"] != 0.01 || runs[5]["trainer.max_epochs"] != 20 {
		t.Errorf("unexpected last run: %v", runs[5])
	}
}

func TestGridTruncatedByCount(t *testing.T) {
	runs, err := gridSpec().Runs(2, nil)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestRandomDraws(t *testing.T) {
	min, max := 0.0001, 0.1
	s := Spec{
		Method: MethodRandom,
		Parameters: map[string]Parameter{
			"model.lr":      {Min: &min, Max: &max},
			"model.encoder": {Values: []any{"bert", "roberta"}},
		},
	}

	rng := rand.New(rand.NewSource(1))
	runs, err := s.Runs(20, rng)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 20 {
		t.Fatalf("expected 20 runs, got %d", len(runs))
	}
	for _, run := range runs {
		lr := run["model.lr"].(float64)
		if lr < min || lr >= max {
			t.Errorf("lr %v outside [%v, %v)", lr, min, max)
		}
		enc := run["model.encoder"].(string)
		if enc != "bert" && enc != "roberta" {
			t.Errorf("unexpected encoder %q", enc)
		}
	}
}

func TestRandomNeedsCount(t *testing.T) {
	s := Spec{
		Method:     MethodRandom,
		Parameters: map[string]Parameter{"x": {Values: []any{1}}},
	}
	if _, err := s.Runs(0, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error without run count")
	}
}

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	src := "method: random\ncount: 8\nparameters:\n" +
		"  model.lr:\n    min: 0.0001\n    max: 0.1\n" +
		"  model.encoder:\n    values: [bert, roberta]\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Method != MethodRandom || s.Count != 8 {
		t.Errorf("unexpected spec: %+v", s)
	}
	if p := s.Parameters["model.lr"]; p.Min == nil || *p.Min != 0.0001 {
		t.Errorf("unexpected parameter: %+v", p)
	}
}

func TestLoadSpecRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown method", "method: bayes\nparameters:\n  x:\n    values: [1]\n"},
		{"no parameters", "method: grid\n"},
		{"empty parameter", "method: grid\nparameters:\n  x: {}\n"},
		{"grid with interval", "method: grid\nparameters:\n  x:\n    min: 0.0\n    max: 1.0\n"},
		{"inverted interval", "method: random\nparameters:\n  x:\n    min: 2.0\n    max: 1.0\n"},
	}

	for _, tc := range tests {
		path := filepath.Join(t.TempDir(), "sweep.yaml")
		if err := os.WriteFile(path, []byte(tc.src), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSpec(path); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

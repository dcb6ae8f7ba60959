package sweep

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func testSpec() Spec {
	return Spec{
		Method: MethodGrid,
		Parameters: map[string]Parameter{
			"trainer.max_epochs": {Values: []any{5, 10}},
		},
	}
}

func TestAgentRunsFullGrid(t *testing.T) {
	results := filepath.Join(t.TempDir(), "runs.jsonl")

	a := NewAgent(Config{}, testSpec(), []string{"/bin/sh", "-c", "exit 0"})
	a.Results = results

	got, err := a.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	for _, res := range got {
		if res.ExitCode != 0 {
			t.Errorf("expected exit code 0, got %d", res.ExitCode)
		}
		if res.ID == "" {
			t.Error("expected a run id")
		}
	}
	if got[0].Params["trainer.max_epochs"] != 5 || got[1].Params["trainer.max_epochs"] != 10 {
		t.Errorf("unexpected run params: %v, %v", got[0].Params, got[1].Params)
	}

	f, err := os.Open(results)
	if err != nil {
		t.Fatalf("open results: %v", err)
	}
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var res RunResult
		if err := json.Unmarshal(sc.Bytes(), &res); err != nil {
			t.Fatalf("bad result line: %v", err)
		}
		lines++
	}
	if lines != 2 {
		t.Errorf("expected 2 result lines, got %d", lines)
	}
}

func TestAgentKeepsSweepingAfterFailure(t *testing.T) {
	a := NewAgent(Config{}, testSpec(), []string{"/bin/sh", "-c", "exit 7"})

	got, err := a.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results despite failures, got %d", len(got))
	}
	for _, res := range got {
		if res.ExitCode != 7 {
			t.Errorf("expected exit code 7, got %d", res.ExitCode)
		}
	}
}

func TestAgentPassesPopulatedConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "seen.yaml")

	// the run copies the populated temp config so we can inspect it
	a := NewAgent(
		Config{"trainer": map[string]any{"accelerator": "cpu"}},
		Spec{Method: MethodGrid, Parameters: map[string]Parameter{
			"trainer.max_epochs": {Values: []any{3}},
		}},
		[]string{"/bin/sh", "-c", "cp " + ConfigPlaceholder + " " + out},
	)

	if _, err := a.Run(context.Background(), 0); err != nil {
		t.Fatalf("run: %v", err)
	}

	cfg, err := LoadConfig(out)
	if err != nil {
		t.Fatalf("load populated config: %v", err)
	}
	trainer := cfg["trainer"].(map[string]any)
	if trainer["accelerator"] != "cpu" || trainer["max_epochs"] != 3 {
		t.Errorf("unexpected populated config: %v", cfg)
	}
}

func TestAgentMissingCommand(t *testing.T) {
	a := NewAgent(Config{}, testSpec(), nil)
	if _, err := a.Run(context.Background(), 0); err == nil {
		t.Fatal("expected error for missing command")
	}
}

func TestArgvAppendsConfigFlag(t *testing.T) {
	a := NewAgent(Config{}, testSpec(), []string{"udtube", "fit"})

	argv := a.argv("/tmp/cfg.yaml")
	if len(argv) != 4 || argv[2] != "--config" || argv[3] != "/tmp/cfg.yaml" {
		t.Errorf("unexpected argv: %v", argv)
	}
}

func TestArgvSubstitutesPlaceholder(t *testing.T) {
	a := NewAgent(Config{}, testSpec(), []string{"udtube", "fit", "--config", ConfigPlaceholder})

	argv := a.argv("/tmp/cfg.yaml")
	if len(argv) != 4 || argv[3] != "/tmp/cfg.yaml" {
		t.Errorf("unexpected argv: %v", argv)
	}
}

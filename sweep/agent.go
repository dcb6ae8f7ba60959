package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfigPlaceholder marks where the populated config path is substituted
// into the training command. When no argument contains it, the path is
// appended as a trailing `--config` flag.
const ConfigPlaceholder = "{config}"

// Agent drives a sweep: it materializes the parameter sets, populates a
// temporary config per run and invokes the training command in a separate
// subprocess, which ensures memory is returned between runs. A failing
// run is recorded and logged, it does not stop the sweep.
type Agent struct {
	Base    Config
	Spec    Spec
	Command []string

	// Results is the path of a JSON-lines run log. Empty disables it.
	Results string

	Log  *zap.Logger
	Rand *rand.Rand
}

// RunResult is the recorded outcome of a single training run.
type RunResult struct {
	ID        string         `json:"id"`
	Params    map[string]any `json:"params"`
	ExitCode  int            `json:"exit_code"`
	Duration  float64        `json:"duration_s"`
	StartedAt time.Time      `json:"started_at"`
}

func NewAgent(base Config, spec Spec, command []string) *Agent {
	return &Agent{
		Base:    base,
		Spec:    spec,
		Command: command,
		Log:     zap.NewNop(),
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes count runs (zero means the sweep's own count, or the full
// grid) and returns their results. Only setup failures abort the sweep;
// subprocess failures are recorded in the corresponding result.
func (a *Agent) Run(ctx context.Context, count int) ([]RunResult, error) {
	if len(a.Command) == 0 {
		return nil, fmt.Errorf("no training command")
	}

	runs, err := a.Spec.Runs(count, a.Rand)
	if err != nil {
		return nil, err
	}

	var log *os.File
	if a.Results != "" {
		log, err = os.OpenFile(a.Results, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		defer log.Close()
	}

	results := make([]RunResult, 0, len(runs))
	for i, params := range runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := a.runOne(ctx, params)
		if err != nil {
			return results, err
		}

		a.Log.Info("run finished",
			zap.String("id", res.ID),
			zap.Int("run", i+1),
			zap.Int("total", len(runs)),
			zap.Int("exit_code", res.ExitCode),
			zap.Float64("duration_s", res.Duration),
		)

		results = append(results, res)
		if log != nil {
			if err := json.NewEncoder(log).Encode(res); err != nil {
				return results, err
			}
		}
	}

	return results, nil
}

func (a *Agent) runOne(ctx context.Context, params map[string]any) (RunResult, error) {
	res := RunResult{
		ID:        uuid.NewString(),
		Params:    params,
		StartedAt: time.Now(),
	}

	cfg := a.Base.Clone()
	for key, value := range params {
		overridden, err := cfg.Insert(key, value)
		if err != nil {
			return res, err
		}
		if overridden {
			a.Log.Debug("overriding configuration argument",
				zap.String("key", key), zap.Any("value", value))
		}
	}

	tmp, err := os.CreateTemp("", "udtube-sweep-*.yaml")
	if err != nil {
		return res, err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := cfg.WriteFile(tmp.Name()); err != nil {
		return res, err
	}

	argv := a.argv(tmp.Name())
	start := time.Now()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	res.Duration = time.Since(start).Seconds()

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("run %s: %w", res.ID, err)
		}
		res.ExitCode = exitErr.ExitCode()
		a.Log.Error("subprocess failed",
			zap.String("id", res.ID),
			zap.Int("exit_code", res.ExitCode),
			zap.ByteString("output", output),
		)
	}

	return res, nil
}

func (a *Agent) argv(configPath string) []string {
	argv := make([]string, len(a.Command))
	substituted := false
	for i, arg := range a.Command {
		if strings.Contains(arg, ConfigPlaceholder) {
			arg = strings.ReplaceAll(arg, ConfigPlaceholder, configPath)
			substituted = true
		}
		argv[i] = arg
	}
	if !substituted {
		argv = append(argv, "--config", configPath)
	}
	return argv
}

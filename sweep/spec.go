package sweep

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	MethodGrid   = "grid"
	MethodRandom = "random"
)

// Spec is a sweep definition: the search method, the parameter space and
// an optional default run count. Parameter names are dotted config keys.
type Spec struct {
	Method     string               `yaml:"method"`
	Count      int                  `yaml:"count"`
	Parameters map[string]Parameter `yaml:"parameters"`
}

// Parameter is one searched dimension: either a discrete value list or a
// continuous [Min, Max) interval.
type Parameter struct {
	Values []any    `yaml:"values"`
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
}

func LoadSpec(path string) (Spec, error) {
	var s Spec

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse sweep %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("sweep %s: %w", path, err)
	}
	return s, nil
}

func (s Spec) validate() error {
	if s.Method != MethodGrid && s.Method != MethodRandom {
		return fmt.Errorf("unknown method %q", s.Method)
	}
	if len(s.Parameters) == 0 {
		return fmt.Errorf("no parameters")
	}
	for name, p := range s.Parameters {
		hasInterval := p.Min != nil && p.Max != nil
		if len(p.Values) == 0 && !hasInterval {
			return fmt.Errorf("parameter %s: needs values or min/max", name)
		}
		if hasInterval && *p.Min >= *p.Max {
			return fmt.Errorf("parameter %s: min must be below max", name)
		}
		if s.Method == MethodGrid && len(p.Values) == 0 {
			return fmt.Errorf("parameter %s: grid search needs discrete values", name)
		}
	}
	return nil
}

// names returns the parameter names sorted, for deterministic run order.
func (s Spec) names() []string {
	names := make([]string, 0, len(s.Parameters))
	for name := range s.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runs materializes the parameter sets of the sweep. For a grid sweep it
// is the cartesian product of all value lists, truncated to count when
// count is positive. For a random sweep it is count draws (falling back
// to the spec's own count).
func (s Spec) Runs(count int, rng *rand.Rand) ([]map[string]any, error) {
	switch s.Method {
	case MethodGrid:
		runs := s.grid()
		if count > 0 && count < len(runs) {
			runs = runs[:count]
		}
		return runs, nil
	case MethodRandom:
		n := count
		if n <= 0 {
			n = s.Count
		}
		if n <= 0 {
			return nil, fmt.Errorf("random sweep needs a run count")
		}
		runs := make([]map[string]any, n)
		for i := range runs {
			runs[i] = s.sample(rng)
		}
		return runs, nil
	}
	return nil, fmt.Errorf("unknown method %q", s.Method)
}

func (s Spec) grid() []map[string]any {
	names := s.names()

	runs := []map[string]any{{}}
	for _, name := range names {
		values := s.Parameters[name].Values
		next := make([]map[string]any, 0, len(runs)*len(values))
		for _, run := range runs {
			for _, value := range values {
				expanded := make(map[string]any, len(run)+1)
				for k, v := range run {
					expanded[k] = v
				}
				expanded[name] = value
				next = append(next, expanded)
			}
		}
		runs = next
	}
	return runs
}

func (s Spec) sample(rng *rand.Rand) map[string]any {
	params := make(map[string]any, len(s.Parameters))
	for _, name := range s.names() {
		p := s.Parameters[name]
		if len(p.Values) > 0 {
			params[name] = p.Values[rng.Intn(len(p.Values))]
			continue
		}
		params[name] = *p.Min + rng.Float64()*(*p.Max-*p.Min)
	}
	return params
}

package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// GoldenDir is the goldie fixture directory, relative to the package
// directory of the test calling RunWithGolden.
const GoldenDir = "testdata/golden"

// GoldenSuffix is the golden file extension.
const GoldenSuffix = ".golden"

// Snapshot returns the canonical JSON golden form of a scenario's trace.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	steps := result.Steps
	if steps == nil {
		steps = []trace.Event{}
	}
	return trace.MarshalCanonical(map[string]any{
		"algorithm":     scenario.Algorithm,
		"scenario_name": scenario.Name,
		"steps":         steps,
	})
}

// GoldenPath returns the golden file for a scenario loaded from
// scenariosDir. Golden files live in a "golden" directory next to it, so
// testdata/scenarios pairs with testdata/golden.
func GoldenPath(scenariosDir string, scenario *Scenario) string {
	parent := filepath.Dir(filepath.Clean(scenariosDir))
	return filepath.Join(parent, "golden", scenario.Name+GoldenSuffix)
}

// CompareGolden checks a snapshot against its golden file byte for byte.
// A missing golden file is reported with os.ErrNotExist.
func CompareGolden(path string, snapshot []byte) (bool, error) {
	want, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("golden file %s: %w", path, os.ErrNotExist)
		}
		return false, err
	}
	return bytes.Equal(want, snapshot), nil
}

// WriteGolden creates or replaces a golden file.
func WriteGolden(path string, snapshot []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create golden dir: %w", err)
	}
	return os.WriteFile(path, snapshot, 0o644)
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, reg *registry.Registry, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(reg, scenario)
	if err != nil {
		return nil, err
	}

	snapshot, err := Snapshot(scenario, result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(GoldenSuffix),
	)
	g.Assert(t, scenario.Name, snapshot)

	return result, nil
}

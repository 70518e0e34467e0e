package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FixtureDir returns the repository testdata directory.
func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

func ReadGolden(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(FixtureDir(t), name)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	return string(b)
}

// ScriptedRand replays a fixed sequence of draws. Each entry is the value
// IntN returns, so a script of 4 makes the next [1, n] draw yield 5.
type ScriptedRand struct {
	t     *testing.T
	draws []int
}

func NewScriptedRand(t *testing.T, draws ...int) *ScriptedRand {
	t.Helper()
	return &ScriptedRand{t: t, draws: draws}
}

func (s *ScriptedRand) IntN(n int) int {
	s.t.Helper()
	if len(s.draws) == 0 {
		s.t.Fatalf("scripted rand exhausted (IntN(%d))", n)
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted draw %d out of range for IntN(%d)", v, n)
	}
	return v
}

// Remaining reports how many scripted draws were not consumed.
func (s *ScriptedRand) Remaining() int {
	return len(s.draws)
}

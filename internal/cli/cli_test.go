package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	// A config path in a fresh temp dir keeps the host config out of tests.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "numelace.yaml")}, args...)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"gen", "solve", "rate", "hint", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "solve", samplePuzzle)
	require.NoError(t, err)
	assert.Contains(t, out, "solved")
	assert.Contains(t, out, "| 5 3 4 | 6 7 8 | 9 1 2 |")
}

func TestSolveCommand_TierCap(t *testing.T) {
	empty := ""
	for i := 0; i < 81; i++ {
		empty += "."
	}
	out, err := execute(t, "solve", "--max-tier", "singles", empty)
	require.NoError(t, err)
	assert.Contains(t, out, "stalled")
}

func TestSolveCommand_Count(t *testing.T) {
	out, err := execute(t, "solve", "--count", samplePuzzle)
	require.NoError(t, err)
	assert.Contains(t, out, "exactly one solution")
}

func TestSolveCommand_BadBoard(t *testing.T) {
	_, err := execute(t, "solve", "123")
	assert.Error(t, err)
}

func TestRateCommand(t *testing.T) {
	out, err := execute(t, "rate", samplePuzzle)
	require.NoError(t, err)
	assert.Contains(t, out, "easy")
}

func TestHintCommand(t *testing.T) {
	out, err := execute(t, "hint", samplePuzzle)
	require.NoError(t, err)
	assert.Contains(t, out, "Naked Single")
}

func TestGenCommand_Deterministic(t *testing.T) {
	a, err := execute(t, "gen", "--seed", "42", "--clues", "40")
	require.NoError(t, err)
	b, err := execute(t, "gen", "--seed", "42", "--clues", "40")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "seed 42")
}

func TestGenCommand_PhraseSeed(t *testing.T) {
	a, err := execute(t, "gen", "--seed", "kitchen-table", "--clues", "40")
	require.NoError(t, err)
	b, err := execute(t, "gen", "--seed", "kitchen-table", "--clues", "40")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenCommand_RejectsBadClueRange(t *testing.T) {
	_, err := execute(t, "gen", "--clues", "40:20")
	assert.Error(t, err)
}

func TestParseSeed(t *testing.T) {
	assert.Equal(t, int64(7), parseSeed("7"))
	assert.Equal(t, parseSeed("lasagne"), parseSeed("lasagne"))
	assert.NotEqual(t, parseSeed("lasagne"), parseSeed("ravioli"))
	assert.NotZero(t, parseSeed(""))
}

func TestParseClueRange(t *testing.T) {
	min, max, err := parseClueRange("", 32)
	require.NoError(t, err)
	assert.Equal(t, 32, min)
	assert.Equal(t, 32, max)

	min, max, err = parseClueRange("28:32", 0)
	require.NoError(t, err)
	assert.Equal(t, 28, min)
	assert.Equal(t, 32, max)

	_, _, err = parseClueRange("28:32:40", 0)
	assert.Error(t, err)
	_, _, err = parseClueRange("abc", 0)
	assert.Error(t, err)
}

package benchmarks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := GetRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderDefaultWorld(t *testing.T) {
	out, err := execute(t, "render", "--world", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "", lines[3])
	assert.Equal(t, []string{"r", "r", "r", "-"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"d", "-", "d", "-"}, strings.Fields(lines[5]))
}

func TestRenderWorldFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(p, []byte("grid: [[\"0\", \"1\"]]\nterminals: [[0, 1]]\n"), 0644))

	out, err := execute(t, "render", "--world", p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"1.0", "0.0"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"r", "-"}, strings.Fields(lines[2]))
}

func TestRenderMissingWorld(t *testing.T) {
	_, err := execute(t, "render", "--world", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGridCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "grid", "--world", "", "-e", "5", "--horizon", "10", "-s", dir, "--seed", "3", "--traces")
	require.NoError(t, err)
	assert.Contains(t, out, "Results saved to "+dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	runDir := filepath.Join(dir, entries[0].Name())
	for _, f := range []string{
		"comparison_config.json",
		"greedy_policy.txt",
		"greedy_values.png",
		filepath.Join("returns", "0_returns.png"),
		filepath.Join("visits", "0_Greedy_visits.png"),
		filepath.Join("traces", "Random_0.jsonl"),
	} {
		_, err := os.Stat(filepath.Join(runDir, f))
		assert.NoError(t, err, f)
	}

	bs, err := os.ReadFile(filepath.Join(runDir, "greedy_policy.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(bs), "0 0 0 1\n0 x 0 -1\n0 0 0 0\n"))
}

func TestGridCommandWithoutSeed(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "grid", "--world", "", "-e", "3", "--horizon", "5", "-s", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	_, err = os.Stat(filepath.Join(dir, entries[0].Name(), "returns", "0_returns.png"))
	assert.NoError(t, err)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rastergrid/gridio"
)

const maze = `3
3
0 1 0
0 1 0
0 0 0
`

func writeMaze(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(maze), 0o644))
	return path
}

func runArgs(t *testing.T, argv ...string) (string, error) {
	t.Helper()
	cfg, err := parseFlags(argv)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	err = run(cfg, &out)
	return out.String(), err
}

func TestParseFlags(t *testing.T) {
	_, err := parseFlags(nil)
	require.ErrorIs(t, err, errUsage)
	_, err = parseFlags([]string{"-in", "x.txt"})
	require.ErrorIs(t, err, errUsage)
	_, err = parseFlags([]string{"-bogus"})
	require.ErrorIs(t, err, errUsage)

	cfg, err := parseFlags([]string{"-in", "x.txt", "-wrap", "-obstacle", "3", "dist", "0,0"})
	require.NoError(t, err)
	assert.True(t, cfg.wrap)
	assert.Equal(t, 3, cfg.obstacle)
	assert.Equal(t, []string{"dist", "0,0"}, cfg.args)
}

func TestRun_Path(t *testing.T) {
	in := writeMaze(t)
	out, err := runArgs(t, "-in", in, "path", "0,0", "2,0")
	require.NoError(t, err)
	assert.Equal(t, "6 0,0 0,1 0,2 1,2 2,2 2,1 2,0\n", out)

	out, err = runArgs(t, "-in", in, "path", "0,0", "1,0")
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)

	_, err = runArgs(t, "-in", in, "path", "0,0", "5,5")
	require.Error(t, err)
}

func TestRun_Dist(t *testing.T) {
	in := writeMaze(t)
	out, err := runArgs(t, "-in", in, "dist", "0,0")
	require.NoError(t, err)
	assert.Equal(t, "3\n3\n0 -1 6\n1 -1 5\n2 3 4\n", out)
}

func TestRun_FillToFile(t *testing.T) {
	in := writeMaze(t)
	dst := filepath.Join(t.TempDir(), "filled.txt")
	_, err := runArgs(t, "-in", in, "-out", dst, "fill", "0,0", "8")
	require.NoError(t, err)

	g, err := gridio.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{8, 1, 8}, {8, 1, 8}, {8, 8, 8}}, g.Rows())
}

func TestRun_Snapshot(t *testing.T) {
	in := writeMaze(t)
	out, err := runArgs(t, "-in", in, "-snapshot", "fill", "1,0", "0")
	require.NoError(t, err)
	g, err := gridio.UnmarshalSnapshot([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, g.Rows())
}

func TestRun_Regions(t *testing.T) {
	in := writeMaze(t)
	out, err := runArgs(t, "-in", in, "regions")
	require.NoError(t, err)
	assert.Equal(t, "0 value=0 size=7 first=0,0\n1 value=1 size=2 first=1,0\n", out)
}

func TestRun_Errors(t *testing.T) {
	in := writeMaze(t)
	for _, argv := range [][]string{
		{"-in", in, "fill", "0,0"},
		{"-in", in, "fill", "0;0", "1"},
		{"-in", in, "fill", "0,0", "x"},
		{"-in", in, "dist"},
		{"-in", in, "regions", "extra"},
		{"-in", in, "teleport"},
		{"-in", filepath.Join(t.TempDir(), "none.txt"), "regions"},
	} {
		_, err := runArgs(t, argv...)
		assert.Error(t, err, "%v", argv)
	}
}

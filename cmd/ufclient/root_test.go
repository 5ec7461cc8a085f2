package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-fundamentals/scenario"
	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

const tinyUF = "10\n4 3\n3 8\n6 5\n9 4\n2 1\n8 9\n5 0\n7 2\n6 1\n1 0\n6 7\n"

// run executes a fresh root command with the given stdin and args.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRoot_StdinTiny(t *testing.T) {
	for _, v := range []string{"quick-union", "quick-find"} {
		t.Run(v, func(t *testing.T) {
			out, err := run(t, tinyUF, "--variant", v)
			require.NoError(t, err)
			assert.Equal(t, "4 3\n3 8\n6 5\n9 4\n2 1\n5 0\n7 2\n6 1\n2 components\n", out)
		})
	}
}

func TestRoot_Trace(t *testing.T) {
	out, err := run(t, "3\n0 1\n0 1\n", "--trace", "-")
	require.NoError(t, err)
	assert.Equal(t, "# 0 1 2\n0 1\n# 1 1 2\n2 components\n", out)
}

func TestRoot_TOMLFileUsesScenarioVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, os.WriteFile(path, []byte("size = 3\nvariant = \"quick-find\"\npairs = [[0, 2], [1, 2]]\n"), 0o644))

	out, err := run(t, "", "--trace", path)
	require.NoError(t, err)
	// quick-find relabels id[0] then id[1] to id[2]
	assert.Equal(t, "# 0 1 2\n0 2\n# 2 1 2\n1 2\n# 2 2 2\n1 components\n", out)
}

func TestRoot_EnvVariant(t *testing.T) {
	t.Setenv("LVLATH_VARIANT", "bogus")
	_, err := run(t, tinyUF)
	assert.ErrorIs(t, err, unionfind.ErrUnknownVariant)
}

func TestRoot_Errors(t *testing.T) {
	_, err := run(t, "2\n0 5\n")
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)

	_, err = run(t, "two\n")
	assert.ErrorIs(t, err, scenario.ErrMalformed)

	_, err = run(t, "", "a", "b")
	assert.Error(t, err)
}

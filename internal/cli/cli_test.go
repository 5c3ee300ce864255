package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brightofhouse/site/internal/asset"
	"github.com/brightofhouse/site/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)

	for _, want := range []string{"sitectl", "migrate", "seed", "sweep", "hash-password"} {
		assert.Contains(t, out, want)
	}
}

func TestHashPassword(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		out, err := execute(t, "", "--json=false", "hash-password", "s3cret")
		require.NoError(t, err)

		hash := strings.TrimSpace(out)
		assert.True(t, strings.HasPrefix(hash, "$2"), "got %q", hash)
		assert.NoError(t, auth.CheckPassword("s3cret", hash))
	})

	t.Run("stdin", func(t *testing.T) {
		out, err := execute(t, "from-stdin\n", "--json=false", "hash-password")
		require.NoError(t, err)
		assert.NoError(t, auth.CheckPassword("from-stdin", strings.TrimSpace(out)))
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "--json", "hash-password", "pw")
		require.NoError(t, err)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.NoError(t, auth.CheckPassword("pw", got["hash"]))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := execute(t, "\n", "--json=false", "hash-password")
		assert.Error(t, err)
	})
}

func TestSeed_MissingFile(t *testing.T) {
	_, err := execute(t, "", "--json=false", "seed", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestPrintSweep(t *testing.T) {
	var buf bytes.Buffer
	printer = NewPrinter(WithOutput(&buf, &buf))

	printSweep(&asset.SweepReport{
		Referenced: 3,
		Orphans:    []string{"Gallery/a.webp"},
		Deleted:    1,
	}, false)

	out := buf.String()
	assert.Contains(t, out, "Gallery/a.webp")
	assert.Contains(t, out, "referenced")
	assert.Contains(t, out, "sweep complete")
}

func TestPrinter_QuietAndJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithOutput(&buf, &buf), WithQuiet(true))
	p.Success("hidden")
	p.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	p = NewPrinter(WithOutput(&buf, &buf), WithJSON(true))
	p.Info("hidden")
	require.NoError(t, p.Result(map[string]int{"n": 1}))
	assert.JSONEq(t, `{"n":1}`, buf.String())
}

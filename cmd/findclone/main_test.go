package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	findclone "github.com/mattkeenan/findclone/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("FINDCLONE_CONFIG", "")
	t.Setenv("FINDCLONE_OVERRIDES", "")
	t.Setenv("FINDCLONE_DEBUG", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestRootCommand_ReportsDuplicates(t *testing.T) {
	clearEnvironment(t)
	dir := writeTree(t, map[string]string{"a.txt": "hello", "b.txt": "hello", "c.txt": "world"})

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.txt")+" and "+filepath.Join(dir, "b.txt")+" are the same\n", out)
}

func TestRootCommand_NoDuplicates(t *testing.T) {
	clearEnvironment(t)
	dir := writeTree(t, map[string]string{"a": "1", "b": "22"})

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCommand_Arguments(t *testing.T) {
	clearEnvironment(t)

	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "one", "two")
	assert.Error(t, err)
}

func TestRootCommand_MissingRoot(t *testing.T) {
	clearEnvironment(t)

	_, err := execute(t, filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, findclone.ErrRootNotTraversable)
}

func TestRootCommand_JSONFromEnvironment(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("FINDCLONE_OVERRIDES", "format:json,hash_workers:2")
	dir := writeTree(t, map[string]string{"x": "same", "y": "same"})

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"type":"duplicate"`), out)
	assert.Contains(t, out, `"size":4`)
}

func TestRootCommand_BadConfiguration(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("FINDCLONE_OVERRIDES", "default:md5")

	_, err := execute(t, t.TempDir())
	assert.ErrorIs(t, err, findclone.ErrUnsupportedAlgorithm)
}

func TestRootCommand_Version(t *testing.T) {
	clearEnvironment(t)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "findclone version "+version)
}

package findclone

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreManager(t *testing.T) {
	im, err := NewIgnoreManager([]string{`\.DS_Store$`, "", `^node_modules(/|$)`})
	require.NoError(t, err)
	assert.True(t, im.HasPatterns())

	assert.True(t, im.ShouldIgnore("photos/.DS_Store"))
	assert.True(t, im.ShouldIgnore("node_modules"))
	assert.True(t, im.ShouldIgnore(filepath.Join("node_modules", "pkg", "index.js")))
	assert.False(t, im.ShouldIgnore("src/node_modules_helper.go"))
}

func TestIgnoreManager_Nil(t *testing.T) {
	var im *IgnoreManager
	assert.False(t, im.ShouldIgnore("anything"))
	assert.False(t, im.HasPatterns())
}

func TestIgnoreManager_InvalidPattern(t *testing.T) {
	_, err := NewIgnoreManager([]string{"(unclosed"})
	assert.Error(t, err)
}

func TestIgnoreManager_LoadIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"good": "# build output\nbuild/\n\n  \\.o$  \n",
		"bad":  "ok\n[invalid\n",
	})

	im, err := NewIgnoreManager(nil)
	require.NoError(t, err)
	assert.False(t, im.HasPatterns())

	require.NoError(t, im.LoadIgnoreFile(filepath.Join(dir, "good")))
	assert.True(t, im.ShouldIgnore("build/app"))
	assert.True(t, im.ShouldIgnore("lib/x.o"))
	assert.False(t, im.ShouldIgnore("lib/x.go"))

	err = im.LoadIgnoreFile(filepath.Join(dir, "bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	assert.Error(t, im.LoadIgnoreFile(filepath.Join(dir, "missing")))
}

package findclone

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugFlags(t *testing.T) {
	t.Cleanup(func() { SetDebugFlags("") })

	SetDebugFlags("scan, Hash:true,compare:off")
	assert.True(t, IsDebugEnabled("scan"))
	assert.True(t, IsDebugEnabled("HASH"))
	assert.False(t, IsDebugEnabled(DebugCompare))
	assert.False(t, IsDebugEnabled("unknown"))

	InitDebugFlags("")
	assert.True(t, IsDebugEnabled("scan"), "empty string keeps existing flags")

	SetDebugFlags("")
	assert.False(t, IsDebugEnabled("scan"))
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetVerboseLevel(0)
		SetLogOutput(os.Stderr)
	})

	SetVerboseLevel(0)
	VerboseLog(1, "hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerboseLevel(2)
	assert.Equal(t, 2, GetVerboseLevel())
	VerboseLog(1, "shown %d", 2)
	VerboseLog(3, "too detailed")
	assert.Contains(t, buf.String(), "shown 2")
	assert.NotContains(t, buf.String(), "too detailed")

	SetVerboseLevel(3)
	func() {
		defer VerboseEnter()()
	}()
	assert.Contains(t, buf.String(), "enter")
	assert.Contains(t, buf.String(), "exit")
}

func TestApplyVerboseConfig(t *testing.T) {
	t.Cleanup(func() {
		SetVerboseLevel(0)
		SetDebugFlags("")
	})

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, config.ApplyOverrides([]string{"level:2", "debug:scan"}))

	ApplyVerboseConfig(config, &Environment{Debug: "hash"})
	assert.Equal(t, 2, GetVerboseLevel())
	assert.False(t, IsDebugEnabled(DebugScan), "environment flags replace the file's")
	assert.True(t, IsDebugEnabled(DebugHash))
}

package findclone

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// writeFiles creates files relative to dir, making parent directories as needed
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// pairLine formats the line the human reporter prints for two files in dir
func pairLine(dir, a, b string) string {
	return filepath.Join(dir, a) + " and " + filepath.Join(dir, b) + " are the same"
}

// outputLines splits reporter output into lines, dropping the trailing newline
func outputLines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// constantHash gives every input the same digest, forcing collisions
type constantHash struct{}

func (constantHash) Write(p []byte) (int, error) { return len(p), nil }
func (constantHash) Sum(b []byte) []byte         { return append(b, 0xAB, 0xCD) }
func (constantHash) Reset()                      {}
func (constantHash) Size() int                   { return 2 }
func (constantHash) BlockSize() int              { return 1 }

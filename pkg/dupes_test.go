package findclone

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt": "hello",
		"b.txt": "hello",
		"c.txt": "world",
	})

	pairs, summary, err := FindDuplicates(context.Background(), dir, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	assert.Equal(t, filepath.Join(dir, "a.txt"), pairs[0].A.Path)
	assert.Equal(t, filepath.Join(dir, "b.txt"), pairs[0].B.Path)
	assert.Equal(t, uint64(5), pairs[0].A.Size)
	assert.Equal(t, "2CF24DBA5FB0A30E26E83B2AC5B9E29E1B161E5C1FA7425E73043362938B9824", pairs[0].Digest)
	assert.Equal(t, 1, summary.Pairs)
}

func TestGroupPairs(t *testing.T) {
	pairs := []ConfirmedPair{
		samplePair("x", "y"),
		samplePair("x", "z"),
		samplePair("y", "z"),
		samplePair("p", "q"),
	}

	groups := GroupPairs(pairs)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"x", "y", "z"}, groups[0].Files)
	assert.Equal(t, []string{"p", "q"}, groups[1].Files)
	assert.Equal(t, "ABCD", groups[0].Digest)
	assert.Equal(t, uint64(5), groups[0].Size)
}

func TestGroupPairs_SharedDigestDifferentContent(t *testing.T) {
	// two sets of identical files whose digests collide must stay apart
	pairs := []ConfirmedPair{
		samplePair("a1", "a2"),
		samplePair("b1", "b2"),
	}

	groups := GroupPairs(pairs)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"a1", "a2"}, groups[0].Files)
	assert.Equal(t, []string{"b1", "b2"}, groups[1].Files)
}

func TestGroupPairs_Empty(t *testing.T) {
	assert.Empty(t, GroupPairs(nil))
}

package findclone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroups_InsertionOrder(t *testing.T) {
	groups := NewGroups[uint64]()
	groups.Add(5, FileEntry{Path: "a", Size: 5})
	groups.Add(3, FileEntry{Path: "b", Size: 3})
	groups.Add(5, FileEntry{Path: "c", Size: 5})
	groups.Add(9, FileEntry{Path: "d", Size: 9})
	groups.Add(3, FileEntry{Path: "e", Size: 3})

	assert.Equal(t, []uint64{5, 3, 9}, groups.Keys())
	assert.Equal(t, 3, groups.Len())
	assert.Equal(t, []FileEntry{{Path: "a", Size: 5}, {Path: "c", Size: 5}}, groups.Get(5))
	assert.Equal(t, []uint64{5, 3}, groups.Candidates())
}

func TestGroups_Empty(t *testing.T) {
	groups := NewGroups[string]()
	assert.Empty(t, groups.Keys())
	assert.Empty(t, groups.Candidates())
	assert.Nil(t, groups.Get("missing"))
}

func TestGroups_SingletonsNeverForwarded(t *testing.T) {
	groups := NewGroups[string]()
	groups.Add("A", FileEntry{Path: "one"})
	groups.Add("B", FileEntry{Path: "two"})
	assert.Empty(t, groups.Candidates())
}

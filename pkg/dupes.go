package findclone

import (
	"context"
	"sync"
)

// DuplicateGroup lists files proven identical to one another
type DuplicateGroup struct {
	Digest string   `json:"digest"`
	Size   uint64   `json:"size"`
	Files  []string `json:"files"`
}

// collector is a Reporter that keeps pairs and warnings in memory
type collector struct {
	mu       sync.Mutex
	pairs    []ConfirmedPair
	warnings []string
}

func (c *collector) Duplicate(pair ConfirmedPair) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pairs = append(c.pairs, pair)
	return nil
}

func (c *collector) Warning(path string, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, path+": "+err.Error())
	return nil
}

// FindDuplicates runs a Finder over root and returns the confirmed pairs instead of
// printing them
func FindDuplicates(ctx context.Context, root string, opts Options) ([]ConfirmedPair, *Summary, error) {
	c := &collector{}
	summary, err := NewFinder(c, opts).Run(ctx, root)
	return c.pairs, summary, err
}

// GroupPairs folds confirmed pairs into groups of mutually identical files. Byte
// identity is transitive, so pairs are merged with a union-find over paths rather than by
// digest, which may be shared by files that differ. Groups and the files inside them keep
// the order in which they first appear.
func GroupPairs(pairs []ConfirmedPair) []DuplicateGroup {
	parent := make(map[string]string)
	var order []string
	info := make(map[string]ConfirmedPair)

	var find func(string) string
	find = func(path string) string {
		if parent[path] != path {
			parent[path] = find(parent[path])
		}
		return parent[path]
	}
	add := func(path string, pair ConfirmedPair) {
		if _, ok := parent[path]; !ok {
			parent[path] = path
			order = append(order, path)
			info[path] = pair
		}
	}

	for _, pair := range pairs {
		add(pair.A.Path, pair)
		add(pair.B.Path, pair)
		rootA, rootB := find(pair.A.Path), find(pair.B.Path)
		if rootA != rootB {
			parent[rootB] = rootA
		}
	}

	index := make(map[string]int)
	var result []DuplicateGroup
	for _, path := range order {
		root := find(path)
		i, ok := index[root]
		if !ok {
			i = len(result)
			index[root] = i
			pair := info[root]
			result = append(result, DuplicateGroup{Digest: pair.Digest, Size: pair.A.Size})
		}
		result[i].Files = append(result[i].Files, path)
	}
	return result
}

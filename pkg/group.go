package findclone

// Groups maps a key to the ordered sequence of entries sharing that key.
// Keys are remembered in first-insertion order so that iteration is reproducible.
type Groups[K comparable] struct {
	keys    []K
	entries map[K][]FileEntry
}

// NewGroups creates an empty grouping
func NewGroups[K comparable]() *Groups[K] {
	return &Groups[K]{entries: make(map[K][]FileEntry)}
}

// Add appends entry to the group for key, creating the group on first use
func (g *Groups[K]) Add(key K, entry FileEntry) {
	existing, ok := g.entries[key]
	if !ok {
		g.keys = append(g.keys, key)
	}
	g.entries[key] = append(existing, entry)
}

// Get returns the entries grouped under key
func (g *Groups[K]) Get(key K) []FileEntry {
	return g.entries[key]
}

// Keys returns all keys in first-insertion order
func (g *Groups[K]) Keys() []K {
	return g.keys
}

// Len returns the number of groups
func (g *Groups[K]) Len() int {
	return len(g.keys)
}

// Candidates returns the keys whose group has at least two members, in insertion order.
// Singleton groups cannot hold duplicates and are never forwarded.
func (g *Groups[K]) Candidates() []K {
	var keys []K
	for _, key := range g.keys {
		if len(g.entries[key]) > 1 {
			keys = append(keys, key)
		}
	}
	return keys
}

package findclone

// FileEntry is a discovered regular file. Entries are never modified once created.
type FileEntry struct {
	Path string `json:"path"`
	Size uint64 `json:"size"`
}

// ConfirmedPair holds two files proven byte-for-byte identical.
// A precedes B in the order of their digest group.
type ConfirmedPair struct {
	A      FileEntry
	B      FileEntry
	Digest string
}

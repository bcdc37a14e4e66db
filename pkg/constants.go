package findclone

import "strings"

// Stream block size used for hashing and byte comparison
const DefaultBufferSize = 8192

// Hash type constants
const (
	HashTypeSHA1    uint16 = 1 // SHA-1 (20 bytes)
	HashTypeSHA256  uint16 = 2 // SHA-256 (32 bytes)
	HashTypeSHA512  uint16 = 3 // SHA-512 (64 bytes)
	HashTypeBLAKE2b uint16 = 4 // BLAKE2b-256 (32 bytes)
)

// Hash size constants
const (
	HashSizeSHA1    = 20
	HashSizeSHA256  = 32
	HashSizeSHA512  = 64
	HashSizeBLAKE2b = 32
)

// HashTypeName returns the human-readable name for a hash type
func HashTypeName(hashType uint16) string {
	switch hashType {
	case HashTypeSHA1:
		return "sha1"
	case HashTypeSHA256:
		return "sha256"
	case HashTypeSHA512:
		return "sha512"
	case HashTypeBLAKE2b:
		return "blake2b"
	default:
		return "unknown"
	}
}

// HashTypeFromName returns the hash type constant from a name (case-insensitive)
func HashTypeFromName(name string) (uint16, bool) {
	switch strings.ToLower(name) {
	case "sha1":
		return HashTypeSHA1, true
	case "sha256":
		return HashTypeSHA256, true
	case "sha512":
		return HashTypeSHA512, true
	case "blake2b":
		return HashTypeBLAKE2b, true
	default:
		return 0, false
	}
}

// Output formats
const (
	FormatHuman  = "human"
	FormatJSON   = "json"
	FormatFdupes = "fdupes"
)

// Error policies for hashing and comparison failures
const (
	PolicyAbort = "abort" // first I/O failure ends the run
	PolicySkip  = "skip"  // report a warning and carry on with the remaining files
)

// Debug flags understood by IsDebugEnabled
const (
	DebugScan    = "scan"
	DebugHash    = "hash"
	DebugCompare = "compare"
)

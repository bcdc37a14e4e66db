package findclone

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	TypeID  uint16
	Size    int
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return &HashAlgorithm{
			Name:    "sha1",
			TypeID:  HashTypeSHA1,
			Size:    HashSizeSHA1,
			NewFunc: func() hash.Hash { return sha1.New() },
		}, nil
	case "sha256":
		return &HashAlgorithm{
			Name:    "sha256",
			TypeID:  HashTypeSHA256,
			Size:    HashSizeSHA256,
			NewFunc: func() hash.Hash { return sha256.New() },
		}, nil
	case "sha512":
		return &HashAlgorithm{
			Name:    "sha512",
			TypeID:  HashTypeSHA512,
			Size:    HashSizeSHA512,
			NewFunc: func() hash.Hash { return sha512.New() },
		}, nil
	case "blake2b":
		return &HashAlgorithm{
			Name:   "blake2b",
			TypeID: HashTypeBLAKE2b,
			Size:   HashSizeBLAKE2b,
			NewFunc: func() hash.Hash {
				// New256 only fails for keys longer than 64 bytes
				h, _ := blake2b.New256(nil)
				return h
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
}

// DigestFile streams the whole file through the algorithm using bufferSize reads and
// returns the digest. The context is checked between reads so a long hash can be interrupted.
func DigestFile(ctx context.Context, filePath string, algorithm *HashAlgorithm, bufferSize int) (digest []byte, err error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() { err = errors.Join(err, file.Close()) }()
	adviseSequential(file)

	hasher := algorithm.NewFunc()
	buffer := make([]byte, bufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("hashing %s interrupted: %w", filePath, err)
		}

		n, readErr := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read from file %s: %w", filePath, readErr)
		}
	}

	if IsDebugEnabled(DebugHash) {
		VerboseLog(3, "DigestFile: %s hashed with %s", filePath, algorithm.Name)
	}
	return hasher.Sum(nil), nil
}

// HexDigest returns the canonical uppercase hexadecimal form of a digest
func HexDigest(digest []byte) string {
	return strings.ToUpper(hex.EncodeToString(digest))
}

// DigestFileToHexString hashes a file and returns the canonical hex string
func DigestFileToHexString(ctx context.Context, filePath string, algorithm *HashAlgorithm, bufferSize int) (string, error) {
	digest, err := DigestFile(ctx, filePath, algorithm, bufferSize)
	if err != nil {
		return "", err
	}
	return HexDigest(digest), nil
}

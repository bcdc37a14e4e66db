package findclone

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// CompareFiles reports whether two files have byte-identical contents.
// Both files are read in lockstep in bufferSize chunks; the first chunk that differs in
// length or content ends the comparison. The result does not depend on argument order.
func CompareFiles(ctx context.Context, pathA, pathB string, bufferSize int) (same bool, err error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	fileA, err := os.Open(pathA)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", pathA, err)
	}
	defer func() { err = errors.Join(err, fileA.Close()) }()

	fileB, err := os.Open(pathB)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", pathB, err)
	}
	defer func() { err = errors.Join(err, fileB.Close()) }()

	adviseSequential(fileA)
	adviseSequential(fileB)

	bufA := make([]byte, bufferSize)
	bufB := make([]byte, bufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("comparing %s and %s interrupted: %w", pathA, pathB, err)
		}

		nA, err := readChunk(fileA, bufA)
		if err != nil {
			return false, fmt.Errorf("failed to read from file %s: %w", pathA, err)
		}
		nB, err := readChunk(fileB, bufB)
		if err != nil {
			return false, fmt.Errorf("failed to read from file %s: %w", pathB, err)
		}

		if nA != nB {
			return false, nil
		}
		if nA == 0 {
			return true, nil
		}
		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}
	}
}

// readChunk fills buf as far as the file allows. A short or empty chunk only happens at
// end of file.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

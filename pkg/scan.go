package findclone

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// pendingPath is a directory entry waiting to be visited
type pendingPath struct {
	path  string
	entry fs.DirEntry
}

// scanPath walks root depth-first in lexical order and streams every regular file on
// resultChan, closing it on return. Entries whose metadata cannot be read are reported as
// warnings and skipped; only a root that cannot be stat'ed or listed fails the scan.
func (p *pipeline) scanPath(ctx context.Context, root string, resultChan chan<- FileEntry) error {
	defer VerboseEnter()()
	defer close(resultChan)

	// The root itself is followed if it is a symlink
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootNotTraversable, err)
	}

	if info.Mode().IsRegular() {
		return p.emit(ctx, resultChan, FileEntry{Path: root, Size: uint64(info.Size())})
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is neither a directory nor a regular file", ErrRootNotTraversable, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootNotTraversable, err)
	}
	pathQueue := childPaths(root, entries)

	for len(pathQueue) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scan interrupted: %w", err)
		}

		current := pathQueue[0]
		pathQueue = pathQueue[1:]

		relPath, err := filepath.Rel(root, current.path)
		if err != nil {
			relPath = current.path
		}
		if p.opts.Ignore.ShouldIgnore(relPath) {
			if IsDebugEnabled(DebugScan) {
				VerboseLog(3, "scanPath: ignoring %s", relPath)
			}
			continue
		}

		switch {
		case current.entry.IsDir():
			children, err := os.ReadDir(current.path)
			if err != nil {
				if werr := p.warn(current.path, err); werr != nil {
					return werr
				}
			}
			// Children go in front so that each directory is finished before its siblings
			pathQueue = append(childPaths(current.path, children), pathQueue...)

		case current.entry.Type().IsRegular():
			info, err := current.entry.Info()
			if err != nil {
				if werr := p.warn(current.path, err); werr != nil {
					return werr
				}
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			if err := p.emit(ctx, resultChan, FileEntry{Path: current.path, Size: uint64(info.Size())}); err != nil {
				return err
			}

		default:
			// symlinks, devices, sockets and pipes are never candidates
			if IsDebugEnabled(DebugScan) {
				VerboseLog(3, "scanPath: skipping non-regular %s (%s)", relPath, current.entry.Type())
			}
		}
	}

	return nil
}

func (p *pipeline) emit(ctx context.Context, resultChan chan<- FileEntry, entry FileEntry) error {
	if IsDebugEnabled(DebugScan) {
		VerboseLog(3, "scanPath: found file %s (%d bytes)", entry.Path, entry.Size)
	}
	select {
	case resultChan <- entry:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scan interrupted: %w", ctx.Err())
	}
}

// childPaths converts directory entries, already sorted by os.ReadDir, into queue items
func childPaths(dir string, entries []fs.DirEntry) []pendingPath {
	paths := make([]pendingPath, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, pendingPath{path: filepath.Join(dir, entry.Name()), entry: entry})
	}
	return paths
}

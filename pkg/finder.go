package findclone

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options controls how a Finder hashes and compares files
type Options struct {
	Algorithm   *HashAlgorithm
	BufferSize  int            // stream block size for hashing and comparison
	HashWorkers int            // 1 hashes sequentially, 0 uses one worker per CPU
	Policy      string         // PolicyAbort or PolicySkip
	Ignore      *IgnoreManager // nil ignores nothing
}

// DefaultOptions returns sha256 hashing with 8 KiB reads on a single worker, aborting on
// the first I/O failure
func DefaultOptions() Options {
	algorithm, _ := GetHashAlgorithm("sha256")
	return Options{
		Algorithm:   algorithm,
		BufferSize:  DefaultBufferSize,
		HashWorkers: 1,
		Policy:      PolicyAbort,
	}
}

// Summary counts what a run looked at
type Summary struct {
	Files            int `json:"files"`
	Warnings         int `json:"warnings"`
	SizeGroups       int `json:"size_groups"`       // sizes shared by two or more files
	SizeCandidates   int `json:"size_candidates"`   // files in those size groups
	DigestGroups     int `json:"digest_groups"`     // digests shared by two or more files
	DigestCandidates int `json:"digest_candidates"` // files in those digest groups
	Comparisons      int `json:"comparisons"`
	Pairs            int `json:"pairs"`
}

// Finder locates duplicate files by size, then digest, then content
type Finder struct {
	opts     Options
	reporter Reporter
}

// NewFinder creates a finder reporting to reporter. A nil algorithm, a non-positive
// buffer size, a negative worker count or an empty policy take the DefaultOptions value.
func NewFinder(reporter Reporter, opts Options) *Finder {
	defaults := DefaultOptions()
	if opts.Algorithm == nil {
		opts.Algorithm = defaults.Algorithm
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaults.BufferSize
	}
	if opts.HashWorkers < 0 {
		opts.HashWorkers = defaults.HashWorkers
	}
	if opts.Policy == "" {
		opts.Policy = defaults.Policy
	}
	return &Finder{opts: opts, reporter: reporter}
}

// pipeline carries the state of a single run
type pipeline struct {
	*Finder
	summary Summary
}

// Run scans root and reports every pair of byte-identical files. Each stage finishes
// before the next starts: all sizes are known before hashing, all digests before comparing.
func (f *Finder) Run(ctx context.Context, root string) (*Summary, error) {
	defer VerboseEnter()()
	p := &pipeline{Finder: f}

	sizeGroups, err := p.groupBySize(ctx, root)
	if err != nil {
		return &p.summary, err
	}

	candidates := sizeGroups.Candidates()
	p.summary.SizeGroups = len(candidates)
	for _, size := range candidates {
		p.summary.SizeCandidates += len(sizeGroups.Get(size))
	}
	Logger().Info().
		Int("files", p.summary.Files).
		Int("ignored", sizeGroups.Len()-len(candidates)).
		Int("size_groups", len(candidates)).
		Msg("grouped files by size")

	digestGroups, err := p.groupByDigest(ctx, sizeGroups, candidates)
	if err != nil {
		return &p.summary, err
	}

	for _, groups := range digestGroups {
		for _, digest := range groups.Candidates() {
			if err := p.compareGroup(ctx, digest, groups.Get(digest)); err != nil {
				return &p.summary, err
			}
		}
	}

	if fl, ok := p.reporter.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return &p.summary, fmt.Errorf("failed to flush report: %w", err)
		}
	}

	Logger().Info().
		Int("comparisons", p.summary.Comparisons).
		Int("pairs", p.summary.Pairs).
		Int("warnings", p.summary.Warnings).
		Msg("finished")
	return &p.summary, nil
}

// groupBySize consumes the scanner's stream and partitions it by exact byte length
func (p *pipeline) groupBySize(ctx context.Context, root string) (*Groups[uint64], error) {
	sizeGroups := NewGroups[uint64]()
	resultChan := make(chan FileEntry, 64)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.scanPath(gctx, root, resultChan)
	})

	for entry := range resultChan {
		p.summary.Files++
		sizeGroups.Add(entry.Size, entry)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sizeGroups, nil
}

// compareGroup compares every unordered pair of a digest group, i before j
func (p *pipeline) compareGroup(ctx context.Context, digest string, entries []FileEntry) error {
	if IsDebugEnabled(DebugCompare) {
		VerboseLog(2, "comparing digest group %s (%d files @ %s each)", digest, len(entries), humanSize(entries[0].Size))
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			same, err := CompareFiles(ctx, entries[i].Path, entries[j].Path, p.opts.BufferSize)
			p.summary.Comparisons++
			if err != nil {
				if p.skipFailure(ctx) {
					if werr := p.warn(entries[i].Path, err); werr != nil {
						return werr
					}
					continue
				}
				return fmt.Errorf("comparison failed: %w", err)
			}
			if !same {
				VerboseLog(2, "%s and %s share digest %s but differ", entries[i].Path, entries[j].Path, digest)
				continue
			}

			p.summary.Pairs++
			pair := ConfirmedPair{A: entries[i], B: entries[j], Digest: digest}
			if err := p.reporter.Duplicate(pair); err != nil {
				return fmt.Errorf("failed to report duplicate: %w", err)
			}
		}
	}
	return nil
}

// skipFailure reports whether an I/O failure may be downgraded to a warning.
// Interruptions are never skipped.
func (p *pipeline) skipFailure(ctx context.Context) bool {
	return p.opts.Policy == PolicySkip && ctx.Err() == nil
}

// warn reports a recoverable problem with one file. For filesystem errors the path
// carried by the error is used and only its cause is printed.
func (p *pipeline) warn(path string, cause error) error {
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		path, cause = pathErr.Path, pathErr.Err
	}
	p.summary.Warnings++
	Logger().Debug().Str("path", path).Err(cause).Msg("skipping file")
	if err := p.reporter.Warning(path, cause); err != nil {
		return fmt.Errorf("failed to report warning: %w", err)
	}
	return nil
}

func (p *pipeline) hashWorkers() int {
	if p.opts.HashWorkers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.opts.HashWorkers
}

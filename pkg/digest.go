package findclone

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// groupByDigest hashes every member of the candidate size groups and partitions each size
// group by digest. The returned groupings follow the order of candidates.
func (p *pipeline) groupByDigest(ctx context.Context, sizeGroups *Groups[uint64], candidates []uint64) ([]*Groups[string], error) {
	defer VerboseEnter()()

	var jobs []FileEntry
	for _, size := range candidates {
		jobs = append(jobs, sizeGroups.Get(size)...)
	}

	digests, failures, err := p.digestAll(ctx, jobs)
	if err != nil {
		return nil, err
	}

	result := make([]*Groups[string], 0, len(candidates))
	next := 0
	for i, size := range candidates {
		members := sizeGroups.Get(size)
		VerboseLog(2, "processing size group %d/%d (%d files @ %s each)", i+1, len(candidates), len(members), humanSize(size))

		digestGroups := NewGroups[string]()
		for _, entry := range members {
			slot := next
			next++
			if failures[slot] != nil {
				if err := p.warn(entry.Path, failures[slot]); err != nil {
					return nil, err
				}
				continue
			}
			digestGroups.Add(digests[slot], entry)
		}

		for _, digest := range digestGroups.Candidates() {
			p.summary.DigestGroups++
			p.summary.DigestCandidates += len(digestGroups.Get(digest))
		}
		result = append(result, digestGroups)
	}

	return result, nil
}

// digestAll hashes jobs and returns their hex digests by position. Under PolicySkip a
// failed file leaves its digest empty and its error in failures; otherwise the first
// failure is returned. Each worker writes only its own slots so no locking is needed, and
// the results come back in job order whatever the number of workers.
func (p *pipeline) digestAll(ctx context.Context, jobs []FileEntry) (digests []string, failures []error, err error) {
	digests = make([]string, len(jobs))
	failures = make([]error, len(jobs))

	hashOne := func(ctx context.Context, i int) error {
		digest, err := DigestFileToHexString(ctx, jobs[i].Path, p.opts.Algorithm, p.opts.BufferSize)
		if err != nil {
			if p.skipFailure(ctx) {
				failures[i] = err
				return nil
			}
			return fmt.Errorf("hashing failed: %w", err)
		}
		digests[i] = digest
		return nil
	}

	workers := p.hashWorkers()
	if workers <= 1 || len(jobs) < 2 {
		for i := range jobs {
			if err := hashOne(ctx, i); err != nil {
				return nil, nil, err
			}
		}
		return digests, failures, nil
	}

	VerboseLog(1, "hashing %d files with %d workers", len(jobs), workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		g.Go(func() error {
			return hashOne(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("hashing interrupted: %w", err)
	}
	return digests, failures, nil
}

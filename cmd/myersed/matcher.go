package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mhr3/myersed/internal/levenshtein"
)

var errMismatch = errors.New("distance mismatch")

// matcher computes distances from one compiled pattern. It holds no mutable
// state and is safe for concurrent use.
type matcher struct {
	backend string
	pattern []byte
	dist    distFunc
	verify  bool
}

func (a *app) matcher(pattern string) (*matcher, error) {
	b := backends[a.cfg.Backend]

	dist, err := b.build(pattern, a.cfg.ASCII)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", b.name, err)
	}
	a.log.Debug("pattern compiled", "backend", b.name, "len", len(pattern), "width", b.width)

	return &matcher{
		backend: b.name,
		pattern: []byte(pattern),
		dist:    dist,
		verify:  a.cfg.Verify,
	}, nil
}

func (m *matcher) distance(text []byte) (int, error) {
	d := m.dist(text)
	if m.verify {
		if want := levenshtein.Distance(m.pattern, text); d != want {
			return 0, fmt.Errorf("%w: %s backend returned %d for %q, reference %d", errMismatch, m.backend, d, text, want)
		}
	}
	return d, nil
}

// distances computes the distance of every text, split into contiguous
// chunks across workers. The first error cancels the remaining chunks.
func (m *matcher) distances(ctx context.Context, texts [][]byte, workers int) ([]int, error) {
	dists := make([]int, len(texts))
	if len(texts) == 0 {
		return dists, nil
	}

	workers = max(min(workers, len(texts)), 1)
	chunk := (len(texts) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)

	for lo := 0; lo < len(texts); lo += chunk {
		hi := min(lo+chunk, len(texts))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := m.distance(texts[i])
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				dists[i] = d
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dists, nil
}

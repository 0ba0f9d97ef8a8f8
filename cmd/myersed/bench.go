package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mhr3/myersed/internal/levenshtein"
)

const dnaAlphabet = "ACGT"

func (a *app) benchCmd() *cobra.Command {
	var (
		pattern    string
		patternLen int
		textSize   string
		mutations  int
		iterations int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure throughput of the selected backend on synthetic DNA",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			size, err := humanize.ParseBytes(textSize)
			if err != nil {
				return fmt.Errorf("text size: %w", err)
			}
			if size > math.MaxInt {
				return fmt.Errorf("text size %s exceeds addressable memory", textSize)
			}
			if patternLen < 0 {
				return fmt.Errorf("pattern length must be >= 0, got %d", patternLen)
			}
			if iterations < 1 {
				return fmt.Errorf("iterations must be >= 1, got %d", iterations)
			}

			rnd := rand.New(rand.NewSource(seed))
			if pattern == "" {
				pattern = string(levenshtein.RandomSequence(rnd, patternLen, dnaAlphabet))
			}

			m, err := a.matcher(pattern)
			if err != nil {
				return err
			}

			text := benchText(rnd, m.pattern, int(size), mutations)
			a.log.Debug("bench input ready", "pattern", len(m.pattern), "text", humanize.Bytes(size))

			var d int
			start := time.Now()
			for i := 0; i < iterations; i++ {
				if d, err = m.distance(text); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			total := float64(len(text)) * float64(iterations)
			rate := total / max(elapsed.Seconds(), 1e-9)

			fmt.Fprintf(a.out, "%s: pattern %d B, text %s x%d in %s (%s/s), distance %d\n",
				m.backend, len(m.pattern), humanize.Bytes(uint64(len(text))), iterations,
				elapsed.Round(time.Microsecond), humanize.Bytes(uint64(rate)), d)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&pattern, "pattern", "p", "", "pattern; random DNA of --pattern-len bytes when empty")
	f.IntVar(&patternLen, "pattern-len", 64, "length of the random pattern")
	f.StringVar(&textSize, "text-size", "1MB", "text size, e.g. 64KB or 16MiB")
	f.IntVar(&mutations, "mutations", 2, "substitutions per pattern copy in the text")
	f.IntVar(&iterations, "iterations", 10, "passes over the text")
	f.Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// benchText returns n bytes of mutated copies of pattern, or random DNA when
// the pattern is empty.
func benchText(rnd *rand.Rand, pattern []byte, n, mutations int) []byte {
	if len(pattern) == 0 {
		return levenshtein.RandomSequence(rnd, n, dnaAlphabet)
	}

	k := min(max(mutations, 0), len(pattern))
	text := make([]byte, 0, n+len(pattern))
	for len(text) < n {
		text = append(text, levenshtein.Mutate(rnd, pattern, levenshtein.Substitute, k, "N")...)
	}
	return text[:n]
}

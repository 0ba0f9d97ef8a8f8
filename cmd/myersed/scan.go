package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const maxLineSize = 64 << 20

func (a *app) scanCmd() *cobra.Command {
	var (
		pattern string
		maxDist int
	)

	cmd := &cobra.Command{
		Use:   "scan [FILE]",
		Short: "Print the edit distance between a pattern and every line of FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, size, err := readLines(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			m, err := a.matcher(pattern)
			if err != nil {
				return err
			}

			dists, err := m.distances(cmd.Context(), lines, a.cfg.Workers)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(a.out)
			matched := 0
			for i, line := range lines {
				if maxDist >= 0 && dists[i] > maxDist {
					continue
				}
				matched++
				fmt.Fprintf(w, "%d\t%s\n", dists[i], line)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			a.log.Info("scan complete",
				"lines", humanize.Comma(int64(len(lines))),
				"size", humanize.Bytes(size),
				"matched", matched,
				"workers", a.cfg.Workers)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to compare every line against")
	cmd.Flags().IntVarP(&maxDist, "max", "k", -1, "only print lines within this distance; -1 prints all")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func readLines(r io.Reader) ([][]byte, uint64, error) {
	var (
		lines [][]byte
		size  uint64
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for sc.Scan() {
		line := append([]byte(nil), sc.Bytes()...)
		lines = append(lines, line)
		size += uint64(len(line))
	}
	return lines, size, sc.Err()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance PATTERN TEXT...",
		Short: "Print the edit distance between PATTERN and each TEXT",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.matcher(args[0])
			if err != nil {
				return err
			}

			for _, text := range args[1:] {
				d, err := m.distance([]byte(text))
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, d)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version, available backends and CPU features",
		Run: func(_ *cobra.Command, _ []string) {
			version := "(devel)"
			if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
				version = bi.Main.Version
			}

			fmt.Fprintf(a.out, "myersed %s %s/%s %s\n", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(a.out, "backends: %s\n", strings.Join(backendNames(), ", "))
			fmt.Fprintf(a.out, "cpu: popcnt=%t avx512f=%t avx512vpopcntdq=%t\n",
				cpu.X86.HasPOPCNT, cpu.X86.HasAVX512F, cpu.X86.HasAVX512VPOPCNTDQ)
		},
	}
}

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	v       *viper.Viper
	cfgFile string
	cfg     config
	log     *log.Logger
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		v:      viper.New(),
		log:    log.NewWithOptions(errOut, log.Options{Prefix: "myersed"}),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "myersed",
		Short: "Bit-parallel edit distance",
		Long: `myersed computes unit-cost Levenshtein distances between a short pattern
and arbitrarily long texts with Myers' bit-vector algorithm.

Commands:
  distance  distance between a pattern and each argument
  scan      distance between a pattern and each input line
  bench     throughput of the selected backend`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	f.String("backend", defaultBackend, "distance backend: "+strings.Join(backendNames(), ", "))
	f.Bool("verify", false, "check every distance against the O(n*m) reference")
	f.Bool("ascii", false, "reject patterns that are not ASCII")
	f.String("log-level", "warn", "log level: debug, info, warn, error")
	f.Int("workers", runtime.GOMAXPROCS(0), "parallel workers for scan")

	for key, name := range map[string]string{
		"backend":   "backend",
		"verify":    "verify",
		"ascii":     "ascii",
		"log_level": "log-level",
		"workers":   "workers",
	} {
		// only fails for a nil flag
		_ = a.v.BindPFlag(key, f.Lookup(name))
	}

	cmd.AddCommand(a.distanceCmd(), a.scanCmd(), a.benchCmd(), a.versionCmd())
	return cmd
}

func (a *app) init() error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	lvl, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(lvl)

	a.log.Debug("config loaded", "backend", a.cfg.Backend, "verify", a.cfg.Verify, "workers", a.cfg.Workers)
	return nil
}

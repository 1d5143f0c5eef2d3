// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/commgraph/app"
	"github.com/katalvlaran/commgraph/config"
	"github.com/katalvlaran/commgraph/extract"
)

// flags holds raw flag values; only flags that were set override the
// configuration.
type flags struct {
	configPath    string
	domain        string
	workers       int
	drainTimeout  time.Duration
	logLevel      string
	logFormat     string
	metricsAddr   string
	trace         string
	verify        bool
	noInteractive bool
	neo4jURI      string
	neo4jUser     string
	neo4jPassword string
}

func newRootCmd(in io.Reader, out, errW io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "commgraph ROOT [CONNECTORS_FILE]",
		Short: "Find teams and connectors in a mail corpus",
		Long: `Walk ROOT, build the sender -> recipient graph of every message file
beneath it and print the connectors: people whose removal splits their team.
The connectors are also written to CONNECTORS_FILE when given. Afterwards an
interactive prompt answers per-address questions until EXIT.

Examples:
  commgraph ./maildir
  commgraph ./maildir connectors.txt --workers 8 --verify
  commgraph ./maildir --no-interactive --metrics-addr :9090`,
		Args:          usageArgs(cobra.RangeArgs(1, 2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			var connectorsFile string
			if len(args) == 2 {
				connectorsFile = args[1]
			}
			return app.New(cfg, out, errW, app.WithInput(in)).Run(cmd.Context(), args[0], connectorsFile)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&f.domain, "domain", "", "mail domain to extract addresses for (default enron.com)")
	pf.IntVar(&f.workers, "workers", 0, "ingest worker count (default number of CPUs)")
	pf.DurationVar(&f.drainTimeout, "drain-timeout", 0, "how long to wait for workers after the walk (default 60s)")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "text or json")
	pf.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	pf.StringVar(&f.trace, "trace", "", "span exporter: none or stdout")
	pf.BoolVar(&f.verify, "verify", false, "cross-check the analysis by brute force on small graphs")
	pf.BoolVar(&f.noInteractive, "no-interactive", false, "skip the interactive prompt")
	pf.StringVar(&f.neo4jURI, "neo4j-uri", "", "export the graph to Neo4j at this URI")
	pf.StringVar(&f.neo4jUser, "neo4j-user", "", "Neo4j user")
	pf.StringVar(&f.neo4jPassword, "neo4j-password", "", "Neo4j password")

	root.AddCommand(newPathCmd(f, out, errW))

	return root
}

func newPathCmd(f *flags, out, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "path ROOT FROM TO",
		Short: "Print the shortest communication chain between two addresses",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			cfg.Interactive = false
			return app.New(cfg, out, errW).Path(cmd.Context(), args[0], args[1], args[2])
		},
	}
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// config loads the file, applies the flags that were set and validates.
func (f *flags) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, usageError{err}
	}

	set := cmd.Flags().Changed
	if set("domain") {
		cfg.Domain = f.domain
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("drain-timeout") {
		cfg.DrainTimeout = f.drainTimeout
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if set("metrics-addr") {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if set("trace") {
		cfg.Trace.Exporter = f.trace
	}
	if set("verify") {
		cfg.Verify.Enabled = f.verify
	}
	if set("no-interactive") {
		cfg.Interactive = !f.noInteractive
	}
	if set("neo4j-uri") {
		cfg.Neo4j.URI = f.neo4jURI
	}
	if set("neo4j-user") {
		cfg.Neo4j.User = f.neo4jUser
	}
	if set("neo4j-password") {
		cfg.Neo4j.Password = f.neo4jPassword
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if _, err := extract.New(cfg.Domain); err != nil {
		return cfg, usageError{fmt.Errorf("domain: %w", err)}
	}

	return cfg, nil
}

// Command netres loads a network scenario and runs one resilience analysis
// against it, logging the results as structured lines on stderr.
//
// Usage:
//
//	netres -config grid.yaml -analysis node -node Relay
//	netres -config grid.yaml -analysis cascade -seeds A,B -metrics-out netres.prom
//
// Settings come from the YAML file, then NETRES_* environment variables,
// then explicit flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/netres/config"
	"github.com/katalvlaran/netres/metrics"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "netres: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("netres", flag.ContinueOnError)
	var (
		cfgPath    = fs.String("config", "", "YAML config with a scenario section (required)")
		analysis   = fs.String("analysis", AnalysisCritical, "one of: "+strings.Join(Analyses, ", "))
		node       = fs.String("node", "", "node for -analysis node")
		from       = fs.String("from", "", "first endpoint for edge, route and disjoint")
		to         = fs.String("to", "", "second endpoint for edge, route and disjoint")
		k          = fs.Int("k", 3, "number of disjoint paths to look for")
		seeds      = fs.String("seeds", "", "comma separated cascade seeds (default: scenario seeds)")
		limit      = fs.Int("limit", 5, "number of critical nodes to report (0 = all)")
		metricsOut = fs.String("metrics-out", "", "write Prometheus text exposition here when metrics are enabled")
		verbosity  = fs.Int("v", 0, "log verbosity (overrides config)")
		threshold  = fs.Float64("threshold", 0, "cascade threshold (overrides config)")
		isolate    = fs.Bool("isolate", false, "failed nodes carry no traffic during a cascade (overrides config)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath == "" {
		return errors.New("-config is required")
	}

	// 1. Config: file, then environment, then explicit flags.
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	v := config.NewViper()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			v.Set(config.KeyVerbosity, *verbosity)
		case "threshold":
			v.Set(config.KeyCascadeThreshold, *threshold)
		case "isolate":
			v.Set(config.KeyIsolateFailed, *isolate)
		}
	})
	if err := config.ApplyOverrides(&cfg, v); err != nil {
		return err
	}

	// 2. Logging and metrics.
	log := newLogger(cfg.Logging)
	var (
		rec = metrics.Recorder(metrics.Noop{})
		reg *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		rec = metrics.NewRegistry(reg, cfg.Metrics.Namespace)
	}

	// 3. Scenario.
	g, err := cfg.Scenario.Build()
	if err != nil {
		return err
	}
	log.V(1).Info("scenario loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"disabled", len(g.Disabled()))

	// 4. Analysis.
	req := Request{
		Analysis: *analysis,
		Node:     *node,
		From:     *from,
		To:       *to,
		K:        *k,
		Seeds:    cfg.Scenario.Seeds,
		Limit:    *limit,
	}
	if *seeds != "" {
		req.Seeds = strings.Split(*seeds, ",")
	}
	if err := Execute(g, cfg.Failure, req, log, rec); err != nil {
		return err
	}

	// 5. Metrics file.
	if reg != nil && *metricsOut != "" {
		if err := prometheus.WriteToTextfile(*metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.V(1).Info("metrics written", "path", *metricsOut)
	}

	return nil
}

// newLogger builds a funcr logger writing one line per entry to stderr.
func newLogger(l config.Logging) logr.Logger {
	opts := funcr.Options{Verbosity: l.Verbosity, LogTimestamp: true}
	if l.Format == "text" {
		return funcr.New(func(prefix, args string) {
			if prefix != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
				return
			}
			fmt.Fprintln(os.Stderr, args)
		}, opts).WithName("netres")
	}

	return funcr.NewJSON(func(obj string) {
		fmt.Fprintln(os.Stderr, obj)
	}, opts).WithName("netres")
}

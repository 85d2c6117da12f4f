// Package main is the entry point for routingctl, a command-line client
// for the routing kernel.
//
// routingctl wires the same stack a long-running service would use —
// layered configuration, structured logging, optional OpenTelemetry
// tracing, Prometheus metrics, an optional route cache, and audit
// logging — onto a one-shot CLI instead of a network transport. Each
// subcommand loads (or builds) a network, runs one engine operation
// against it, and prints the result as JSON.
//
// # Configuration
//
// Configuration is loaded with the following priority (highest to lowest):
//  1. Environment variables (prefix: ROUTEKERNEL_)
//  2. Config files (config.yaml, config/config.yaml, /etc/routekernel/config.yaml)
//  3. Default values
//
// # Commands
//
//	routingctl optimize  -from ID -to ID [-algorithm astar|dijkstra|bidirectional|hybrid]
//	routingctl scenario  -from ID -to ID -name lowest_cost|fastest|greenest|most_reliable
//	routingctl pareto    -from ID -to ID
//	routingctl reroute   -from ID -to ID -at ID -disrupt edge1,edge2
//	routingctl seed      [-out path]
//
// Every command except seed accepts -network path to load a NetworkFile
// (see pkg/domain.LoadStore); without it, the built-in demonstration
// network (pkg/domain.ExampleNetwork) is used.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"logistics/pkg/audit"
	"logistics/pkg/cache"
	"logistics/pkg/config"
	"logistics/pkg/domain"
	"logistics/pkg/engine"
	"logistics/pkg/logger"
	"logistics/pkg/metrics"
	"logistics/pkg/solver"
	"logistics/pkg/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		tp, err := telemetry.Init(ctx, telemetry.Config{
			Enabled:     cfg.Tracing.Enabled,
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
			SampleRate:  cfg.Tracing.SampleRate,
		})
		if err != nil {
			logger.Log.Warn("failed to init telemetry", "error", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					logger.Log.Warn("failed to shutdown telemetry", "error", err)
				}
			}()
		}
	}

	m := metrics.InitMetrics(cfg.Metrics.Namespace, cfg.App.Name)

	var routeCache *cache.RouteCache
	if cfg.Cache.Enabled {
		baseCache, err := cache.New(cache.FromConfig(&cfg.Cache))
		if err != nil {
			logger.Log.Warn("failed to create cache, continuing without it", "error", err)
		} else {
			routeCache = cache.NewRouteCache(baseCache, cfg.Cache.DefaultTTL)
		}
	}

	auditLogger, err := audit.New(audit.DefaultConfig())
	if err != nil {
		logger.Log.Warn("failed to create audit logger, continuing without it", "error", err)
		auditLogger = &audit.NoopLogger{}
	}

	cmd, args := os.Args[1], os.Args[2:]
	var cmdErr error
	switch cmd {
	case "optimize":
		cmdErr = runOptimize(ctx, args, m, auditLogger, routeCache)
	case "scenario":
		cmdErr = runScenario(ctx, args, m, auditLogger)
	case "pareto":
		cmdErr = runPareto(ctx, args, m, auditLogger)
	case "reroute":
		cmdErr = runReroute(ctx, args, m, auditLogger)
	case "seed":
		cmdErr = runSeed(args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		logger.Error("command failed", "command", cmd, "error", cmdErr)
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `routingctl - routing kernel command-line client

Usage:
  routingctl optimize  -from ID -to ID [-algorithm astar|dijkstra|bidirectional|hybrid] [-network path]
  routingctl scenario  -from ID -to ID -name lowest_cost|fastest|greenest|most_reliable [-network path]
  routingctl pareto    -from ID -to ID [-network path]
  routingctl reroute   -from ID -to ID -at ID -disrupt edge1,edge2 [-network path]
  routingctl seed      [-out path]`)
}

func loadNetwork(path string) (*domain.Store, error) {
	if path == "" {
		return domain.ExampleNetwork(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network file: %w", err)
	}
	defer f.Close()
	return domain.LoadStore(f)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runOptimize(ctx context.Context, args []string, m *metrics.Metrics, al audit.Logger, rc *cache.RouteCache) error {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	from := fs.String("from", "", "start node id")
	to := fs.String("to", "", "goal node id")
	algo := fs.String("algorithm", "hybrid", "astar, dijkstra, bidirectional, or hybrid")
	networkPath := fs.String("network", "", "path to a network JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return fmt.Errorf("optimize requires -from and -to")
	}

	store, err := loadNetwork(*networkPath)
	if err != nil {
		return err
	}
	m.RecordStoreSize(store.NodeCount(), store.EdgeCount())

	e := engine.New(store, m, al)
	defer e.Shutdown(ctx)

	algorithm := solver.ParseAlgorithm(*algo)
	cfg := engine.OptimizeConfig{Algorithm: algorithm}

	if rc != nil {
		if cached, ok, _ := rc.Get(ctx, store, *from, *to, algorithm.String()); ok {
			return printJSON(cached)
		}
	}

	r, err := e.Optimize(ctx, *from, *to, nil, cfg)
	if err != nil {
		return err
	}
	if rc != nil {
		_ = rc.Set(ctx, store, *from, *to, algorithm.String(), r, 0)
	}
	return printJSON(r)
}

func runScenario(ctx context.Context, args []string, m *metrics.Metrics, al audit.Logger) error {
	fs := flag.NewFlagSet("scenario", flag.ExitOnError)
	from := fs.String("from", "", "start node id")
	to := fs.String("to", "", "goal node id")
	name := fs.String("name", "", "lowest_cost, fastest, greenest, or most_reliable")
	networkPath := fs.String("network", "", "path to a network JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" || *name == "" {
		return fmt.Errorf("scenario requires -from, -to, and -name")
	}

	store, err := loadNetwork(*networkPath)
	if err != nil {
		return err
	}
	m.RecordStoreSize(store.NodeCount(), store.EdgeCount())

	e := engine.New(store, m, al)
	defer e.Shutdown(ctx)

	r, err := e.Scenario(ctx, *from, *to, *name, nil)
	if err != nil {
		return err
	}
	return printJSON(r)
}

func runPareto(ctx context.Context, args []string, m *metrics.Metrics, al audit.Logger) error {
	fs := flag.NewFlagSet("pareto", flag.ExitOnError)
	from := fs.String("from", "", "start node id")
	to := fs.String("to", "", "goal node id")
	networkPath := fs.String("network", "", "path to a network JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return fmt.Errorf("pareto requires -from and -to")
	}

	store, err := loadNetwork(*networkPath)
	if err != nil {
		return err
	}
	m.RecordStoreSize(store.NodeCount(), store.EdgeCount())

	e := engine.New(store, m, al)
	defer e.Shutdown(ctx)

	result, err := e.Pareto(ctx, *from, *to, nil)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runReroute(ctx context.Context, args []string, m *metrics.Metrics, al audit.Logger) error {
	fs := flag.NewFlagSet("reroute", flag.ExitOnError)
	from := fs.String("from", "", "original start node id")
	to := fs.String("to", "", "original goal node id")
	at := fs.String("at", "", "current position node id")
	disrupt := fs.String("disrupt", "", "comma-separated disrupted edge ids")
	networkPath := fs.String("network", "", "path to a network JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" || *at == "" || *disrupt == "" {
		return fmt.Errorf("reroute requires -from, -to, -at, and -disrupt")
	}

	store, err := loadNetwork(*networkPath)
	if err != nil {
		return err
	}
	m.RecordStoreSize(store.NodeCount(), store.EdgeCount())

	e := engine.New(store, m, al)
	defer e.Shutdown(ctx)

	current, err := e.Optimize(ctx, *from, *to, nil, engine.OptimizeConfig{Algorithm: solver.AlgorithmHybrid})
	if err != nil {
		return fmt.Errorf("solve original route: %w", err)
	}

	edgeIDs := strings.Split(*disrupt, ",")
	r, err := e.Reroute(ctx, *at, current, edgeIDs, nil)
	if err != nil {
		return err
	}
	return printJSON(r)
}

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	out := fs.String("out", "", "output path; defaults to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	nf := domain.DumpStore(domain.ExampleNetwork())

	if *out == "" {
		return printJSON(nf)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(nf)
}

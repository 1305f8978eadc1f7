// # cmd/flightpath/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/flightpath/cli"
	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/dijkstra"
	"github.com/katalvlaran/flightpath/loader"
	"github.com/katalvlaran/flightpath/route"
	"github.com/katalvlaran/flightpath/server"
	"github.com/sirupsen/logrus"
)

const VERSION = "1.0.0"

const defaultConfigPath = "./flightpath.toml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("flightpath", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		configPath    = fset.String("config", defaultConfigPath, "Path to config file")
		dataPath      = fset.String("data", "", "Route dataset (overrides dataset.path)")
		from          = fset.String("from", "", "Origin airport code (one-shot query)")
		to            = fset.String("to", "", "Destination airport code (one-shot query)")
		serve         = fset.Bool("serve", false, "Serve the HTTP API instead of prompting")
		bidirectional = fset.Bool("bidirectional", false, "Treat every route as flyable both ways")
		verbose       = fset.Bool("verbose", false, "Enable verbose logging")
		version       = fset.Bool("version", false, "Print version and exit")
	)
	if err := fset.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "flightpath v%s\n", VERSION)
		return 0
	}

	// Load config; a missing default file means built-in defaults.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !(errors.Is(err, fs.ErrNotExist) && *configPath == defaultConfigPath) {
			fmt.Fprintf(stderr, "failed to load config: %v\n", err)
			return 1
		}
		cfg = config.Default()
	}
	if *dataPath != "" {
		cfg.Dataset.Path = *dataPath
	}
	if *bidirectional {
		cfg.Dataset.Bidirectional = true
	}
	if *serve {
		cfg.Server.Enabled = true
	}

	// Setup logging
	logger := logrus.New()
	logger.SetOutput(stderr)
	cfg.ConfigureLogger(logger)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Load the route network
	g, rep, err := loader.LoadFile(cfg.Dataset.Path,
		loader.WithBidirectional(cfg.Dataset.Bidirectional),
		loader.WithMultiEdges(cfg.Dataset.MultiEdges),
		loader.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).WithField("path", cfg.Dataset.Path).Error("failed to load route dataset")
		return 1
	}
	logger.WithField("skipped", len(rep.Skipped)).Debug("dataset ready")

	var routeOpts []dijkstra.Option
	if cfg.Query.MaxDistance > 0 {
		routeOpts = append(routeOpts, dijkstra.WithMaxDistance(cfg.Query.MaxDistance))
	}

	switch {
	case cfg.Server.Enabled:
		srv := server.New(g,
			server.WithAddr(cfg.Server.Addr),
			server.WithLogger(logger),
			server.WithRouteOptions(routeOpts...),
		)
		if err := srv.Run(ctx); err != nil {
			logger.WithError(err).Error("server failed")
			return 1
		}
		return 0

	case *from != "" || *to != "":
		p, err := route.FindRoute(g, *from, *to, routeOpts...)
		switch {
		case err == nil:
			cli.PrintRoute(stdout, p, cfg.Output.Precision)
			return 0
		case route.IsNoRoute(err):
			fmt.Fprintf(stdout, "There is no complete route from %s to %s.\n", core.NormalizeCode(*from), core.NormalizeCode(*to))
			return 0
		case route.IsUnknownAirport(err):
			fmt.Fprintln(stderr, err)
			return 2
		default:
			logger.WithError(err).Error("route query failed")
			return 1
		}

	default:
		s := &cli.Session{
			In:        stdin,
			Out:       stdout,
			Graph:     g,
			Precision: cfg.Output.Precision,
			Options:   routeOpts,
			Log:       logger,
		}
		if err := s.Run(); err != nil {
			return 1
		}
		return 0
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tally/internal/tally"
	"tally/internal/tools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "v1.0.0"

const (
	cacheSweepInterval = time.Minute
	cacheMaxAge        = 10 * time.Minute
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		log.Fatal().Err(err).Msg("tally failed")
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tally", flag.ContinueOnError)

	var (
		logLevel string
		serve    bool
	)

	fs.StringVar(&logLevel, "log-level", "warn", "Log level for stderr diagnostics (debug, info, warn, error)")
	fs.BoolVar(&serve, "serve", false, "Run an MCP server over stdio instead of printing the report")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", logLevel, err)
	}

	zerolog.SetGlobalLevel(level)

	if serve {
		return serveStdio(ctx)
	}

	report := tally.Default()
	log.Debug().
		Int("from", report.From).
		Int("to", report.To).
		Int("result", report.Result).
		Stringer("sign", report.Sign).
		Msg("computed")

	_, err = report.WriteTo(stdout)

	return err
}

func serveStdio(ctx context.Context) error {
	err := tools.HealthCheck()
	if err != nil {
		log.Warn().Err(err).Msg("initial health check failed (non-fatal)")
	} else {
		log.Info().Msg("health check passed")
	}

	go sweepCache(ctx)

	log.Info().Msg("tally MCP server started (press Ctrl+C to stop)")

	err = tools.NewServer(version).Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server terminated: %w", err)
	}

	log.Info().Msg("tally MCP server stopped gracefully")

	return nil
}

func sweepCache(ctx context.Context) {
	ticker := time.NewTicker(cacheSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := tools.PruneCache(cacheMaxAge); removed > 0 {
				log.Debug().Int("removed", removed).Msg("pruned accumulate cache")
			}
		}
	}
}

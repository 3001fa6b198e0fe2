// Command graphworks computes minimum spanning trees of weighted graphs and
// exhaustively generates every labeled simple graph up to a vertex count.
//
// Subcommands:
//
//	graphworks mst          [--input input.txt] [--method prim|kruskal]
//	graphworks generate N   [--output generated_graphs.txt] [--workers 1] [--metrics-file PATH]
//	graphworks combinations N K
//	graphworks version
//
// Every flag can also be set from a YAML file (--config, default
// graphworks.yaml when present) using snake_case keys.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Version is the program banner version.
const Version = "0.2.0"

// CLI is the root command line.
type CLI struct {
	Config   kong.ConfigFlag `help:"YAML configuration file." placeholder:"PATH"`
	LogLevel string          `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"info" env:"GRAPHWORKS_LOG_LEVEL"`

	Mst          mstCmd          `cmd:"" help:"Compute the minimum spanning tree of a weighted adjacency matrix."`
	Generate     generateCmd     `cmd:"" help:"Generate every labeled simple graph on up to N vertices."`
	Combinations combinationsCmd `cmd:"" help:"Print every K-combination of {0..N-1} in reverse colex order."`
	Version      versionCmd      `cmd:"" help:"Show the program version."`
}

// runContext carries the process-wide collaborators into every command's Run.
type runContext struct {
	ctx    context.Context
	logger log.Logger
	stdout io.Writer
}

// defaultConfigPath is read when it exists and --config is not given.
const defaultConfigPath = "graphworks.yaml"

// newParser builds the kong parser shared by main and the tests.
func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("graphworks"),
		kong.Description("Graph Works: spanning trees and exhaustive graph generation."),
		kong.UsageOnError(),
		kong.Configuration(yamlLoader, defaultConfigPath),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

// newLogger returns a logfmt logger on w filtered at lvl.
func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}

	return level.NewFilter(logger, allow)
}

// run parses args and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr, os.Exit)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	rc := &runContext{
		ctx:    ctx,
		logger: newLogger(stderr, cli.LogLevel),
		stdout: stdout,
	}
	if err := kctx.Run(rc); err != nil {
		level.Error(rc.logger).Log("msg", "command failed", "cmd", kctx.Command(), "err", err)
		return err
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Parse errors are not logged by run; print them plainly.
		var perr *kong.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(os.Stderr, "graphworks:", err)
		}
		os.Exit(1)
	}
}

// Command bbcenglish rewrites American spellings to British ones in the // comment
// lines of source files. It reports by default and writes only with --apply; the
// exit status is 1 whenever any change was found so it can gate CI
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bbcenglish/internal/core/version"
	"bbcenglish/internal/modkit"
	"bbcenglish/internal/platform/config"
	"bbcenglish/internal/platform/logger"
	"bbcenglish/internal/services/fixer/domain"
	fixermod "bbcenglish/internal/services/fixer/module"
	"bbcenglish/internal/services/fixer/report"

	"github.com/alecthomas/kong"
)

// CLI is the command line surface
type CLI struct {
	Path string `arg:"" help:"File or directory to process."`

	DryRun  bool `name:"dry-run" default:"true" help:"Report changes without writing them (the default)."`
	Apply   bool `help:"Write changes back to the files (overrides --dry-run)."`
	Verbose bool `short:"v" help:"Print every change, not just per-file counts."`

	Ext      []string `help:"File suffixes to process (default .rs, env BBC_FIX_EXTENSIONS)." placeholder:".rs"`
	Exclude  []string `help:"Directory names to skip while walking (env BBC_FIX_EXCLUDE)." placeholder:"target"`
	Workers  int      `help:"Files processed concurrently (default 1, env BBC_FIX_WORKERS)."`
	Format   string   `default:"text" enum:"text,json" help:"Report format: text or json."`
	Rules    string   `help:"Rule pack JSON to use instead of the built-in one (env BBC_FIX_RULES)."`
	LogLevel string   `name:"log-level" default:"warn" enum:"trace,debug,info,warn,error,off" help:"Diagnostic log level (stderr)."`

	Version kong.VersionFlag `help:"Print version and exit."`
}

func (c CLI) mode() domain.Mode {
	if c.Apply {
		return domain.ModeApply
	}
	return domain.ModeDryRun
}

type exitCode int

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("bbcenglish"),
		kong.Description("Convert American spellings in // comments to British English."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.Info("bbcenglish").String()},
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	logger.Init(logger.Options{
		Level:   cli.LogLevel,
		Format:  "console",
		Service: "bbcenglish",
		Writer:  stderr,
	})

	cfg := config.New().Prefix("BBC_")
	fixer, err := fixermod.New(modkit.Deps{Log: logger.Get(), Cfg: cfg}, fixermod.Options{
		Extensions: cli.Ext,
		Exclude:    cli.Exclude,
		Workers:    cli.Workers,
		RulesPath:  cli.Rules,
	})
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	logger.WarnInvalid(logger.Get(), cfg)

	runner := fixer.Ports().(fixermod.Ports).Runner
	rep, err := runner.Run(ctx, fixer.RunOptions(cli.Path, cli.mode()))
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	if cli.Format == "json" {
		report.Failures(stderr, rep)
		if err := report.JSON(stdout, rep); err != nil {
			fmt.Fprintf(stderr, "ERROR: write report: %v\n", err)
			return 1
		}
	} else {
		report.Banner(stdout, rep.Mode)
		report.Text(stdout, stderr, rep, cli.Verbose)
	}
	if rep.Interrupted {
		return 130
	}
	return rep.Summary.ExitCode()
}

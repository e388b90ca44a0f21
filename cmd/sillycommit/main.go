// Package main is the entry point for the sillycommit application.
// sillycommit prints a randomized, silly commit message.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/randomizedcoder/sillycommit/internal/config"
	"github.com/randomizedcoder/sillycommit/internal/generator"
	"github.com/randomizedcoder/sillycommit/internal/wordlist"
)

// version is set at build time via ldflags.
var version = "dev"

// CLI flags. Unset flags leave the loaded configuration untouched.
type CLI struct {
	Version   kong.VersionFlag `help:"Print version."`
	Config    string           `help:"Config file path (default: $XDG_CONFIG_HOME/sillycommit/config.toml)." type:"path" env:"SILLYCOMMIT_CONFIG"`
	Names     string           `short:"n" help:"Names file, one per line or a YAML list." type:"path"`
	Templates string           `short:"t" help:"Commit message templates file, one per line or a YAML list." type:"path"`
	Count     int              `short:"c" help:"Number of messages to print."`
	Seed      uint64           `help:"Seed for reproducible output."`
	LogLevel  string           `help:"Log level (debug, info, warn, error)."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sillycommit"),
		kong.Description("Print a randomized, silly commit message."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	cfg, err := loadConfig(&cli)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "failed to create logger: "+err.Error())
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("sillycommit starting",
		zap.String("version", version),
		zap.String("names_file", cfg.NamesFile),
		zap.String("templates_file", cfg.TemplatesFile),
		zap.Int("count", cfg.Count),
		zap.Uint64("seed", cfg.Seed),
	)

	if err := generate(cfg, logger, stdout); err != nil {
		logger.Error("generation failed", zap.Error(err))
		fmt.Fprintln(stderr, "sillycommit: "+err.Error())
		return 1
	}
	return 0
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cli *CLI) (*config.Config, error) {
	path := cli.Config
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cli.Names != "" {
		cfg.NamesFile = cli.Names
	}
	if cli.Templates != "" {
		cfg.TemplatesFile = cli.Templates
	}
	if cli.Count > 0 {
		cfg.Count = cli.Count
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	return cfg, nil
}

// newLogger builds a production JSON logger at the given level.
// Production config writes to stderr, keeping stdout for messages.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func generate(cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	names, err := wordlist.LoadOr(cfg.NamesFile, wordlist.DefaultNames)
	if err != nil {
		return err
	}
	templates, err := wordlist.LoadOr(cfg.TemplatesFile, wordlist.DefaultTemplates)
	if err != nil {
		return err
	}

	logger.Debug("word lists loaded",
		zap.Int("names", len(names)),
		zap.Int("templates", len(templates)),
	)

	g := generator.NewWithRng(names, templates, logger, generator.NewRand(cfg.Seed))
	return g.WriteN(out, cfg.Count)
}

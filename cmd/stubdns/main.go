// SPDX-License-Identifier: GPL-3.0-or-later

// Command stubdns resolves a domain name's A record against a
// recursive resolver.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/mfernandes/stubdns"
	"github.com/mfernandes/stubdns/internal/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "stubdns"
	app.Usage = "resolve a domain name's A record against a recursive resolver"
	app.ArgsUsage = "<domain>"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from yaml `FILE`",
		},
		cli.StringFlag{
			Name:  "server, s",
			Usage: "recursive resolver `ADDRESS` in host:port form",
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "time budget for the whole resolve, 0 waits forever",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable debug logging",
		},
	}
	app.Action = resolveAction
	return app
}

func resolveAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: stubdns [options] <domain>", 1)
	}
	name := c.Args().First()

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}
	if server := c.String("server"); server != "" {
		cfg.ServerAddr = server
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}

	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.Debug("sending query",
		zap.String("name", name),
		zap.String("server", cfg.ServerAddr),
		zap.Duration("timeout", cfg.Timeout),
	)

	start := time.Now()
	resolver := &stubdns.Resolver{ServerAddr: cfg.ServerAddr}
	record, err := resolver.Resolve(ctx, name)
	if err != nil {
		logger.Error("resolve failed",
			zap.String("name", name),
			zap.String("server", cfg.ServerAddr),
			zap.Error(err),
		)
		return cli.NewExitError(err.Error(), 1)
	}
	logger.Debug("resolve done", zap.Duration("elapsed", time.Since(start)))

	printRecord(c, record)
	return nil
}

func printRecord(c *cli.Context, record *stubdns.AnswerRecord) {
	fmt.Fprintf(c.App.Writer, "name:\t%s\n", record.Label)
	if record.Type != nil {
		fmt.Fprintf(c.App.Writer, "type:\t%s (%s)\n", record.Type.Name, record.Type.Meaning)
	}
	if record.Class != nil {
		fmt.Fprintf(c.App.Writer, "class:\t%s (%s)\n", record.Class.Name, record.Class.Meaning)
	}
	fmt.Fprintf(c.App.Writer, "ttl:\t%d\n", record.TTL)
	fmt.Fprintf(c.App.Writer, "ip:\t%s\n", record.IP)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg.Build()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mikud-go/mikud"
	"github.com/mikud-go/mikud/internal/config"
	"github.com/mikud-go/mikud/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.NewClientLogger("mikud")
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, log))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, log *logger.Logger) int {
	cfg, rest, err := config.GetConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout)
		return exitOK
	}

	if len(rest) > 0 {
		switch rest[0] {
		case "version":
			printBuildInfo(stdout)
			return exitOK
		case "help":
			printUsage(stdout)
			return exitOK
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "mikud: %v\n\n", err)
		printUsage(stderr)
		return exitUsage
	}
	if len(rest) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		fmt.Fprintf(stderr, "mikud: %v\n", err)
		return exitUsage
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "mikud: unknown command %q\n\n", rest[0])
		printUsage(stderr)
		return exitUsage
	}

	client, err := mikud.NewClient(clientOptions(cfg, log))
	if err != nil {
		log.Error().Err(err).Msg("create client")
		fmt.Fprintf(stderr, "mikud: %v\n", err)
		return exitError
	}

	err = cmd.run(ctx, client, rest[1:], stdout)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, mikud.ErrInvalidArgument):
		fmt.Fprintf(stderr, "mikud %s: %v\nusage: mikud [flags] %s\n", rest[0], err, cmd.usage)
		return exitUsage
	default:
		log.Error().Err(err).Str("command", rest[0]).Msg("command failed")
		fmt.Fprintf(stderr, "mikud %s: %v\n", rest[0], err)
		return exitError
	}
}

func clientOptions(cfg *config.StructuredConfig, log *logger.Logger) mikud.Options {
	return mikud.Options{
		BaseURL:         cfg.API.BaseURL,
		APIKey:          cfg.API.Key,
		SubscriptionKey: cfg.API.SubscriptionKey,
		ApplicationName: cfg.API.ApplicationName,
		UserAgent:       cfg.API.UserAgent,
		RequestTimeout:  cfg.API.RequestTimeout,
		Username:        cfg.Auth.Username,
		Password:        cfg.Auth.Password,
		TokenFile:       cfg.Auth.TokenFile,
		Logger:          &log.Logger,
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: mikud [flags] <command> [command flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "  version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")
	config.PrintFlags(w)
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}

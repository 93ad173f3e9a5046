// Copyright 2025 The WordLadder Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordladder command: shortest word ladders where a
move adds or removes one letter and rearranging letters is free.

# Usage

Find a ladder and print it one word per line:

	wordladder -dict /usr/share/dict/words cat dog

Run interactively, one pair per line:

	wordladder -c

Serve msgpack requests on stdin/stdout, exporting Prometheus metrics:

	wordladder -s -metrics :9090

Compile a text word list into the binary format, which loads faster:

	wordladder -dict words.txt -compile words.bin

# Configuration

Defaults come from config.toml in the user config directory (created on first
run) or from the file given with -config:

	[search]
	max_steps = 250000
	bidirectional = true
	trace = 0

	[dict]
	path = "wordlist.txt"

Flags override the file. -save-config writes the search flags given on the
command line into it, and -reset-config restores the defaults:

	wordladder -save-config -max-steps 50000 -uni

# Exit codes

	0  ladder printed
	1  unexpected error
	2  invalid arguments, including words with no letters a-z
	3  dictionary could not be loaded
	4  a word is not in the dictionary
	5  no ladder exists
	6  step budget exhausted before an answer was found
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/wordladder/internal/cli"
	"github.com/bastiangx/wordladder/internal/logger"
	"github.com/bastiangx/wordladder/internal/utils"
	"github.com/bastiangx/wordladder/pkg/config"
	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/ladder"
	"github.com/bastiangx/wordladder/pkg/metrics"
	"github.com/bastiangx/wordladder/pkg/server"
	"github.com/bastiangx/wordladder/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Version = "0.3.0"
	AppName = "wordladder"
	gh      = "https://github.com/bastiangx/wordladder"
)

const (
	exitOK      = 0
	exitInvalid = server.CodeInvalid
	exitLoad    = server.CodeLoad
)

var errUsage = errors.New("expected exactly two words: <start> <target>")

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, picks a mode and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] <start> <target>\n", AppName)
		flags.PrintDefaults()
	}

	defaults := config.DefaultConfig()
	showVersion := flags.Bool("version", false, "Show current version")
	dictPath := flags.String("dict", "", "Dictionary file, text or compiled .bin (default from config)")
	configPath := flags.String("config", "", "Path to config.toml")
	debugMode := flags.Bool("d", false, "Toggle debug mode")
	cliMode := flags.Bool("c", false, "Interactive mode: read \"start target\" pairs from stdin")
	serverMode := flags.Bool("s", false, "Serve msgpack ladder requests on stdin/stdout")
	metricsAddr := flags.String("metrics", "", "Expose Prometheus metrics on this address, e.g. :9090")
	maxSteps := flags.Int("max-steps", defaults.Search.MaxSteps, "Node expansions allowed per search")
	unidirectional := flags.Bool("uni", false, "Search forward only instead of from both ends")
	trace := flags.Int("trace", defaults.Search.Trace, "Log every expansion: 1 as word indices, 2 as words")
	compileOut := flags.String("compile", "", "Write the loaded dictionary to this .bin file and exit")
	saveConfig := flags.Bool("save-config", false, "Store -max-steps, -uni and -trace in the config file and exit")
	resetConfig := flags.Bool("reset-config", false, "Overwrite the config file with the defaults and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitInvalid
	}

	logger.Setup(*debugMode)
	errLog := logger.NewWithConfig(stderr, "", log.WarnLevel, false, log.TextFormatter)

	if *showVersion {
		printVersion(stderr)
		return exitOK
	}

	if *cliMode && *serverMode {
		errLog.Error("-c and -s are mutually exclusive")
		return exitInvalid
	}
	editConfig := *saveConfig || *resetConfig
	oneShot := !*cliMode && !*serverMode && *compileOut == "" && !editConfig
	if oneShot && flags.NArg() != 2 {
		errLog.Error(errUsage)
		flags.Usage()
		return exitInvalid
	}

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		errLog.Error("config", "err", err)
		return server.CodeInternal
	}
	log.Debugf("Using config file: (%s)", usedConfig)

	if editConfig {
		path, err := configTarget(*configPath, usedConfig)
		if err != nil {
			errLog.Error("config", "err", err)
			return server.CodeInternal
		}
		if *resetConfig {
			if err := config.RebuildConfigFile(path); err != nil {
				errLog.Error("Failed to reset config", "err", err)
				return server.CodeInternal
			}
			cfg = config.DefaultConfig()
			log.Debugf("Reset %s to defaults", path)
		}
		if *saveConfig {
			var steps, traceLevel *int
			var bidirectional *bool
			flags.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "max-steps":
					steps = maxSteps
				case "uni":
					enabled := !*unidirectional
					bidirectional = &enabled
				case "trace":
					traceLevel = trace
				}
			})
			if err := cfg.Update(path, steps, bidirectional, traceLevel); err != nil {
				errLog.Error("Failed to save config", "err", err)
				return server.CodeInternal
			}
			log.Debugf("Saved search settings to %s", path)
		}
		return exitOK
	}

	// Flags override the file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			cfg.Dict.Path = *dictPath
		case "max-steps":
			cfg.Search.MaxSteps = *maxSteps
		case "uni":
			cfg.Search.Bidirectional = !*unidirectional
		case "trace":
			cfg.Search.Trace = *trace
		}
	})
	cfg.Sanitize()

	configDir := ""
	if usedConfig != "" {
		configDir = filepath.Dir(usedConfig)
	}
	resolved := utils.ResolveDictionaryPath(cfg.Dict.Path, configDir)
	idx, err := dictionary.LoadFile(resolved)
	if err != nil {
		errLog.Error("Failed to load dictionary", "err", err)
		return exitLoad
	}
	stats := idx.Stats()
	metrics.DictionaryWords.WithLabelValues("words").Set(float64(stats.Words))
	metrics.DictionaryWords.WithLabelValues("classes").Set(float64(stats.Classes))
	log.Debugf("Loaded %s words in %s anagram classes from %s",
		utils.FormatCount(stats.Words), utils.FormatCount(stats.Classes), resolved)

	if *compileOut != "" {
		if err := dictionary.CompileFile(idx, *compileOut); err != nil {
			errLog.Error("Failed to compile dictionary", "err", err)
			return server.CodeFor(err)
		}
		log.Debugf("Wrote %s", *compileOut)
		return exitOK
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	options := []ladder.Option{
		ladder.WithMaxSteps(cfg.Search.MaxSteps),
		ladder.WithBidirectional(cfg.Search.Bidirectional),
		ladder.WithTrace(cfg.Search.Trace),
		ladder.WithLogger(logger.New("search")),
	}

	switch {
	case *cliMode:
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(idx, stdout, cfg.CLI.Suggestions, cfg.Server.MaxWordLen, options...)
		if err := handler.Start(stdin); err != nil {
			errLog.Error("CLI error", "err", err)
			return server.CodeInternal
		}
		return exitOK
	case *serverMode:
		log.Debug("spawning IPC")
		srv := server.NewServer(idx, cfg, stdin, stdout)
		srv.SetLogger(logger.New("search"))
		if err := srv.Start(); err != nil {
			errLog.Error("Server error", "err", err)
			return server.CodeInternal
		}
		return exitOK
	}

	start, target := flags.Arg(0), flags.Arg(1)
	for _, word := range []string{start, target} {
		if err := utils.ValidateWord(word, cfg.Server.MaxWordLen); err != nil {
			errLog.Error("Invalid word", "err", err)
			return exitInvalid
		}
	}

	words, err := ladder.Run(start, target, idx, options...)
	if err != nil {
		errLog.Error(err)
		var notFound *ladder.WordNotFoundError
		if errors.As(err, &notFound) {
			matcher := suggest.NewMatcher(idx.Words())
			if hint := cli.Hint(matcher, notFound.Word, cfg.CLI.Suggestions); hint != "" {
				fmt.Fprintln(stderr, hint)
			}
		}
		return server.CodeFor(err)
	}
	if err := cli.PrintLadder(stdout, words); err != nil {
		return server.CodeInternal
	}
	return exitOK
}

// configTarget picks the file -save-config and -reset-config write to: the
// -config path even when it does not exist yet, else the file that was loaded,
// else the default location.
func configTarget(customPath, usedPath string) (string, error) {
	if customPath != "" {
		return customPath, nil
	}
	if usedPath != "" {
		return usedPath, nil
	}
	return config.DefaultConfigPath()
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Debugf("Serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("Metrics server: %v", err)
	}
}

func printVersion(w io.Writer) {
	banner := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordLadder ] Shortest word ladders, anagrams for free")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

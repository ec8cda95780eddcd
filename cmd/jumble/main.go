// Copyright 2025 The Jumble Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the jumble solver CLI.

Jumble finds every word in a word list that can be spelled from a bag of
letters, using each letter at most as many times as it was given. Short letter
sets are solved by enumerating distinct arrangements against a prefix trie;
longer ones by filtering the word list on letter signatures and counts.

# Usage

Solve a single jumble with the default word list:

	jumble hiresamir

Use another word list, force a strategy and show debug timing:

	jumble -dict /usr/share/dict/words -strategy sig -d hiresamir

Run in CLI mode to solve one query per line:

	jumble -c -limit 20

Run as a MessagePack IPC server over stdin/stdout:

	jumble -ipc

Word lists are plain text with one word per line. Files ending in .gz are
decompressed on the fly. Relative paths are looked up in the working
directory, next to the executable and in the config directory.

# Configuration

Defaults live in [UserConfigDir]/jumble/config.toml, created on first run:

	[solver]
	threshold = 9
	strategy = "auto"
	prune = true

	[dict]
	path = "corncob_lowercase.txt"

	[cli]
	limit = 0
	color = true

JUMBLE_THRESHOLD, JUMBLE_STRATEGY, JUMBLE_PRUNE, JUMBLE_DICT, JUMBLE_LIMIT and
JUMBLE_COLOR override the file. Flags given on the command line override both.

# Command Line Flags

	-dict string
	    Word list to search
	-config string
	    Config file to use instead of the default one
	-threshold int
	    Query length from which signature matching is used
	-strategy string
	    auto, permutation (perm) or signature (sig)
	-no-prune
	    Enumerate every arrangement instead of pruning dead prefixes
	-limit int
	    Number of words to print (0 for all)
	-no-color
	    Plain output in CLI mode
	-d  Enable debug mode with timing and dictionary stats
	-c  Run CLI mode, one query per line
	-ipc
	    Run the MessagePack IPC server
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/jumble/internal/cli"
	"github.com/bastiangx/jumble/internal/utils"
	"github.com/bastiangx/jumble/pkg/config"
	"github.com/bastiangx/jumble/pkg/format"
	"github.com/bastiangx/jumble/pkg/server"
	"github.com/bastiangx/jumble/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "jumble"
	gh      = "https://github.com/bastiangx/jumble"
)

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

// main wires config, flags and the solver to one of the three modes.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Config file to use instead of the default one")
	dictPath := flag.String("dict", defaultConfig.Dict.Path, "Word list to search")
	threshold := flag.Int("threshold", defaultConfig.Solver.Threshold, "Query length from which signature matching is used")
	strategy := flag.String("strategy", defaultConfig.Solver.Strategy, "auto, permutation (perm) or signature (sig)")
	noPrune := flag.Bool("no-prune", !defaultConfig.Solver.Prune, "Enumerate every arrangement instead of pruning dead prefixes")
	limit := flag.Int("limit", defaultConfig.CLI.Limit, "Number of words to print (0 for all)")
	noColor := flag.Bool("no-color", !defaultConfig.CLI.Color, "Plain output in CLI mode")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- one query per line")
	ipcMode := flag.Bool("ipc", false, "Run the MessagePack IPC server over stdin/stdout")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <letters>\n\n", AppName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedPath)

	// only flags given on the command line beat the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			appConfig.Dict.Path = *dictPath
		case "threshold":
			appConfig.Solver.Threshold = *threshold
		case "strategy":
			appConfig.Solver.Strategy = *strategy
		case "no-prune":
			appConfig.Solver.Prune = !*noPrune
		case "limit":
			appConfig.CLI.Limit = *limit
		case "no-color":
			appConfig.CLI.Color = !*noColor
		}
	})
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	opts, err := appConfig.SolverOptions()
	if err != nil {
		log.Fatalf("Invalid strategy: %v", err)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	source := pathResolver.GetDictPath(appConfig.Dict.Path)
	log.Debug("Solver options",
		"dict", utils.GetAbsolutePath(source),
		"threshold", opts.Threshold,
		"strategy", opts.Strategy,
		"prune", opts.Prune,
		"configDir", pathResolver.ConfigDir())

	s := solver.New(source, opts)

	switch {
	case *ipcMode:
		log.Debug("spawning IPC")
		if err := server.NewServer(s).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(s, appConfig.CLI.Limit, appConfig.CLI.Color)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		if flag.NArg() == 0 {
			flag.Usage()
			os.Exit(2)
		}
		result, err := s.Solve(strings.Join(flag.Args(), ""))
		if err != nil {
			log.Fatalf("Failed to solve: %v", err)
		}
		log.Debugf("Took [ %v ] for '%s' using %s", result.Elapsed, result.Query, result.Strategy)
		if err := format.Write(os.Stdout, format.Limit(result.Words, appConfig.CLI.Limit)); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Jumble ] Unscrambles letters into every word they can spell")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/screa/vanity-address-miner/internal/config"
	logpkg "github.com/screa/vanity-address-miner/internal/logger"
	"github.com/screa/vanity-address-miner/internal/output"
	minerpkg "github.com/screa/vanity-address-miner/pkg/miner"
	"github.com/screa/vanity-address-miner/pkg/patterns"
	"github.com/screa/vanity-address-miner/pkg/publisher"
)

var (
	logger   = logpkg.New()
	newMiner = minerpkg.NewMiner
)

func main() {
	code := 0
	rootCmd := newRootCmd(func(cmd *cobra.Command, args []string) {
		code = run(cmd, args, os.Stdin, os.Stdout)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func newRootCmd(runFn func(cmd *cobra.Command, args []string)) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "vanity-miner [PATTERN...]",
		Short: "Brute-force an Ethereum address matching a pattern",
		Long: `Generates secp256k1 keypairs on every CPU until the derived address
matches one of the given regex patterns (case-insensitive).

If no patterns are provided, they are read from standard input, one per line.`,
		Args: cobra.ArbitraryArgs,
		Run:  runFn,
	}

	rootCmd.Flags().BoolP("quiet", "q", false, "Output only the resulting address and private key separated by a space")
	rootCmd.Flags().StringP("color", "c", string(config.ColorAuto), "Color strategy: always, always_ansi, auto, never")
	rootCmd.Flags().BoolP("stream", "s", false, "Keep outputting results until terminated")
	rootCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of worker goroutines")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log debug diagnostics")
	rootCmd.Flags().StringP("log-file", "l", "", "Append diagnostics to this file (default: stderr)")

	return rootCmd
}

// run executes the search and returns the process exit code
func run(cmd *cobra.Command, args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := config.Load(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	restoreLogging, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return 1
	}
	defer restoreLogging()

	if f, ok := stdin.(*os.File); ok && len(args) == 0 && config.IsTerminal(f) {
		logger.Info("Reading patterns from standard input, one per line; finish with Ctrl+D")
	}
	raw, err := cfg.ResolvePatterns(args, stdin)
	if err != nil {
		logger.Error("could not read patterns", "err", err)
		return 1
	}

	set := patterns.Compile(raw)
	for _, rej := range set.Rejected() {
		logger.Warn("ignoring pattern", "pattern", rej.Pattern, "err", rej.Err)
	}

	term := output.NewTerminal(stdout, cfg.Color)
	pub := publisher.New(term, cfg.Quiet, cfg.Stream)

	if set.Len() == 0 {
		if err := term.Write(pub.EmptyPatterns()); err != nil {
			logger.Error("could not write to stdout", "err", err)
		}
		return 1
	}

	if err := pub.WriteHeader(set.Len()); err != nil {
		logger.Error("could not write to stdout", "err", err)
		return 1
	}

	miner := newMiner(cfg, set, term, pub.RateLine, logger)
	logger.Debugf("searching with %d workers, stream=%v", miner.Workers(), cfg.Stream)

	// Set up signal handling for Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-sigChan:
			logger.Info("Received interrupt signal. Stopping workers...")
			miner.Stop()
		case <-finished:
		}
	}()

	if err := pub.Run(miner); err != nil {
		logger.Error("could not write to stdout", "err", err)
		return 1
	}
	return 0
}

// setupLogging points the logger at the configured destination. The returned
// func closes the log file and restores the previous logger.
func setupLogging(cfg *config.Config) (func(), error) {
	prev := logger
	restore := func() {}

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		logger = logpkg.NewWriter(file)
		restore = func() {
			logger = prev
			_ = file.Close()
		}
	}
	logger.SetVerbose(cfg.Verbose)

	return restore, nil
}

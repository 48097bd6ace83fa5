package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"puzzle71scan/internal/config"
	"puzzle71scan/internal/curve"
	"puzzle71scan/internal/hash160"
	logpkg "puzzle71scan/internal/logger"
	"puzzle71scan/pkg/scanner"
	"puzzle71scan/pkg/types"
)

// targetHash160Hex is puzzle #71's target public-key hash, fixed by
// the puzzle itself rather than configurable.
const targetHash160Hex = "f6f5431d25bbf7b12e8add9af5e3475c44a0a5b8"

var (
	cfg    = config.NewConfig()
	logger *logpkg.Logger
)

func main() {
	var backupPaths []string

	rootCmd := &cobra.Command{
		Use:   "puzzle71scan",
		Short: "Brute-force scanner for Bitcoin puzzle #71's 71-bit keyspace",
		Long: `puzzle71scan searches the 71-bit private key range of Bitcoin puzzle #71
for the key matching a fixed target hash160, using a batched secp256k1 walk
and Montgomery's simultaneous-inversion trick to amortize field inversions
across each batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := fmt.Sscan(args[0], &cfg.Workers); err != nil {
					return fmt.Errorf("invalid worker count %q: %w", args[0], err)
				}
			}
			cfg.BackupPaths = backupPaths
			return runScanner()
		},
	}

	rootCmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Number of scanning goroutines")
	rootCmd.Flags().DurationVar(&cfg.StatsInterval, "stats-interval", cfg.StatsInterval, "Progress reporting interval")
	rootCmd.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Points per batch inversion")
	rootCmd.Flags().IntVar(&cfg.NumBatches, "num-batches", cfg.NumBatches, "Batches per drawn chunk")
	rootCmd.Flags().StringVar(&cfg.FoundKeyPath, "found-key-file", cfg.FoundKeyPath, "Path to write the solution report to")
	rootCmd.Flags().StringArrayVar(&backupPaths, "backup", nil, "Additional path to also write the solution report to (repeatable)")
	rootCmd.Flags().StringVarP(&cfg.LogFile, "log-file", "l", "", "Log file for progress output (default: stdout)")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScanner() error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogging()

	h160Bytes, err := hex.DecodeString(targetHash160Hex)
	if err != nil {
		return fmt.Errorf("decoding target hash160: %w", err)
	}
	var h160 [20]byte
	copy(h160[:], h160Bytes)

	target, err := types.NewTarget(h160)
	if err != nil {
		return fmt.Errorf("deriving target address: %w", err)
	}

	logger.Banner(
		fmt.Sprintf("Target: %s", target.Address),
		fmt.Sprintf("Hash160: %x", target.Hash160),
		fmt.Sprintf("Workers: %d", cfg.Workers),
		fmt.Sprintf("Batch geometry: %d x %d", cfg.BatchSize, cfg.NumBatches),
	)

	logger.Printf("running startup self-test...")
	if err := curve.SelfTest(); err != nil {
		return fmt.Errorf("self-test failed, refusing to start: %w", err)
	}
	if err := hash160.SelfTest(); err != nil {
		return fmt.Errorf("self-test failed, refusing to start: %w", err)
	}
	logger.Printf("self-test passed")

	s := scanner.New(cfg, logger, target)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	resultChan := make(chan *types.FoundRecord, 1)
	go func() {
		resultChan <- s.Run()
	}()

	select {
	case record := <-resultChan:
		printResult(record)
	case <-sigChan:
		logger.Printf("received interrupt, stopping workers...")
		s.Stop()
		record := <-resultChan
		printResult(record)
	}

	return nil
}

func printResult(record *types.FoundRecord) {
	if record == nil {
		logger.Printf("scan stopped, no match found")
		return
	}

	logger.Rule()
	logger.Printf("FOUND")
	logger.Printf("Private Key: 0x%s", record.PrivateKeyHex)
	logger.Printf("Target: %s", record.Target.Address)
	logger.Printf("Hash160: %s", record.Hash160Hex)
	logger.Printf("Found: %s", record.Found.Format(time.RFC1123))
	logger.Printf("Total keys checked: %d", record.TotalChecked)
	logger.Rule()
}

func setupLogging() {
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		logger = logpkg.NewWriter(file)
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
		return
	}

	logger = logpkg.New()
	logger.SetFlags(log.LstdFlags)
}

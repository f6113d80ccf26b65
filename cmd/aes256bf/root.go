package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/aes256bf/aes256bf"
)

var logLevel slog.LevelVar

var rootCmd = &cobra.Command{
	Use:   "aes256bf",
	Short: "Brute-force AES-256 key recovery against a weak counter-derived key scheme",
	Long: `aes256bf exhaustively searches the 32-bit counter space behind a family
of weak AES-256 key-derivation schemes, reporting every candidate key that
decrypts a given ciphertext to the all-zero block.`,
	RunE: runSearch,
}

// Execute adds all child commands and runs the root command. Called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	flags := rootCmd.Flags()
	flags.String("mode", "ascii-hex", "key derivation mode: ascii-hex, raw-le, factory, factory-reversed")
	flags.String("ciphertext", "", "32 hex characters, the target AES-256 ciphertext block")
	flags.Bool("mask", false, "explicitly set the 255-state PRNG mask sweep (defaults per mode if unset)")
	flags.Int("workers", 0, "number of search goroutines (0 = GOMAXPROCS)")
	flags.String("lcg", "", "pinned generator for factory modes: bsd-rand")
	flags.Bool("debug", false, "enable debug logging")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	if viper.GetBool("debug") {
		logLevel.Set(slog.LevelDebug)
	}

	mode, err := aes256bf.ParseDerivationMode(viper.GetString("mode"))
	if err != nil {
		return err
	}

	ctHex := viper.GetString("ciphertext")
	if ctHex == "" {
		return fmt.Errorf("--ciphertext is required")
	}
	ciphertext, err := aes256bf.ParseCiphertextHex(ctHex)
	if err != nil {
		return err
	}

	cfg := aes256bf.NewSearchConfig(mode, ciphertext)
	if cmd.Flags().Changed("mask") {
		cfg.UseMask = viper.GetBool("mask")
	}
	cfg.Workers = viper.GetInt("workers")

	if lcgName := viper.GetString("lcg"); lcgName != "" {
		lcgKind, err := parseLCGKind(lcgName)
		if err != nil {
			return err
		}
		cfg.LCG = lcgKind
	}

	sink := aes256bf.NewHexSink(os.Stdout)
	return aes256bf.Run(context.Background(), cfg, sink)
}

func parseLCGKind(s string) (aes256bf.LCGKind, error) {
	switch s {
	case "bsd-rand":
		return aes256bf.LCGBSDRand, nil
	default:
		return aes256bf.LCGNone, fmt.Errorf("unrecognized --lcg value %q", s)
	}
}

// Package main provides the vcfy command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger *zap.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vcfy",
		Short:   "Simulate genetic variants and report k-mer SNP densities",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Long: `vcfy simulates genetic variants (SNPs and indels) over a reference
genome and writes them as a VCF file. It also reports the number of SNPs
in all k-mers of the reference for an existing VCF file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			return initLogger()
		},
	}

	cmd.AddCommand(newSimulateCmd())
	cmd.AddCommand(newKsnpCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.vcfy.yaml if present. Missing config is fine.
func initConfig() {
	viper.SetConfigName(".vcfy")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	_ = viper.ReadInConfig()
}

// initLogger installs a console logger on stderr for warnings and
// diagnostics.
func initLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}

// resolveRegion falls back to the configured region key when no region flag
// was given.
func resolveRegion(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString("region")
}

// openOutput opens the output file, or stdout for "".
func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

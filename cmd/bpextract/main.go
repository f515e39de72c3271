// Package main provides the CLI entry point for bpextract.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/bacteria-search/bpextract/internal/logging"
	"github.com/bacteria-search/bpextract/pkg/bpextract"
	"github.com/bacteria-search/bpextract/pkg/bpextract/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputPath string
	configPath string
	guideline  string
	logLevel   string
	logFormat  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bpextract [input.xlsx]",
		Short: "Extract clinical breakpoints from a EUCAST breakpoint workbook",
		Long: `bpextract reads the EUCAST clinical breakpoint tables workbook
(one worksheet per organism group) and writes a JSON array of MIC and
disk diffusion breakpoint records.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json (default: console)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: "+bpextract.DefaultOutputPath+")")
	rootCmd.Flags().StringVar(&guideline, "guideline", "", "Guideline label written on every record")

	rootCmd.AddCommand(newSheetsCmd())
	return rootCmd
}

// settings is the merged result of defaults, config file and flags.
type settings struct {
	input  string
	output string
	opts   bpextract.Options
	log    logging.Config
}

func loadSettings(cmd *cobra.Command, args []string) (settings, error) {
	var fileCfg bpextract.FileConfig
	if configPath != "" {
		cfg, err := bpextract.LoadConfigFile(configPath)
		if err != nil {
			return settings{}, err
		}
		fileCfg = cfg
	}

	s := settings{
		input:  bpextract.DefaultInputPath,
		output: bpextract.DefaultOutputPath,
		opts:   fileCfg.Apply(bpextract.DefaultOptions()),
		log:    logging.DefaultConfig(),
	}
	if fileCfg.Input != "" {
		s.input = fileCfg.Input
	}
	if fileCfg.Output != "" {
		s.output = fileCfg.Output
	}
	if fileCfg.LogLevel != "" {
		s.log.Level = fileCfg.LogLevel
	}
	if fileCfg.LogFormat != "" {
		s.log.Format = fileCfg.LogFormat
	}

	if len(args) > 0 {
		s.input = args[0]
	}
	if outputPath != "" {
		s.output = outputPath
	}
	if guideline != "" {
		s.opts.Guideline = guideline
	}
	if logLevel != "" {
		s.log.Level = logLevel
	}
	if logFormat != "" {
		s.log.Format = logFormat
	}
	return s, nil
}

func run(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(s.log)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	s.opts.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("reading workbook", zap.String("path", s.input))
	result, extractErr := bpextract.Extract(ctx, s.input, s.opts)
	if result == nil {
		return fmt.Errorf("extraction failed: %w", extractErr)
	}

	if err := output.WriteFile(s.output, result.Records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("saved breakpoints", zap.String("path", s.output), zap.Int("records", len(result.Records)))

	if err := output.WriteSummary(cmd.OutOrStdout(), result.Records); err != nil {
		return err
	}
	if extractErr != nil {
		return fmt.Errorf("extraction interrupted: %w", extractErr)
	}
	return nil
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "Compare the configured sheet mapping with a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, args)
			if err != nil {
				return err
			}

			sheets, err := bpextract.InspectSheets(s.input, s.opts.Sheets)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SHEET\tGROUP\tSTATUS")
			for _, sp := range sheets {
				status := "ok"
				switch {
				case !sp.InMapping:
					status = "ignored (not mapped)"
				case !sp.InWorkbook:
					status = "missing"
				}
				fmt.Fprintf(w, "%q\t%s\t%s\n", sp.SheetName, sp.OrganismGroup, status)
			}
			return w.Flush()
		},
	}
}

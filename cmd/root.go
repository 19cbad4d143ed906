package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/liamg/shark/metrics"
	"github.com/liamg/shark/scan"
	"github.com/liamg/shark/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var versionRequested bool
var cfgFile string

func init() {
	registerFlags(rootCmd.Flags())
}

var rootCmd = &cobra.Command{
	Use:   "shark [flags] target [target...]",
	Short: "Shark is a concurrent TCP port scanner",
	Long: `A concurrent TCP connect scanner. Targets may be host names, IP addresses or CIDR blocks.

With --probe an HTTP GET request is sent to every open port to capture a banner.
Only probe hosts you trust.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shark %s\n", v)
			return nil
		}

		cfg, err := loadConfig(cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}

		if debug {
			cfg.Verbosity = "high"
		}
		configureLogging(cmd.ErrOrStderr(), cfg.Verbosity)

		if len(args) == 0 {
			return errors.New("please specify a target")
		}

		return run(cmd.Context(), cmd.OutOrStdout(), cfg, args)
	},
}

func run(ctx context.Context, w io.Writer, cfg *Config, targets []string) error {

	if ctx == nil {
		ctx = context.Background()
	}

	ports, err := scan.ParsePortSpec(cfg.Ports)
	if err != nil {
		return err
	}

	format := scan.Format(cfg.Output)

	opts := []scan.Option{
		scan.WithProbe(cfg.Probe),
		scan.WithReadTimeout(cfg.ReadTimeout()),
		scan.WithLogger(log.StandardLogger()),
	}

	var recorder *metrics.Recorder
	if cfg.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		opts = append(opts, scan.WithObserver(recorder))
	}

	scanner := scan.NewConnectScanner(cfg.Timeout(), cfg.Workers, opts...)

	log.Debugf("Scanning %d ports...", len(ports))

	var reports []*scan.Report
	for _, target := range targets {

		log.Debugf("Scanning target %s...", target)

		targetIterator := scan.NewTargetIterator(strings.TrimSpace(target))
		for {
			host, err := targetIterator.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				return err
			}

			report := scanTarget(ctx, scanner, host, ports, cfg)
			if cfg.HideEmpty && !report.HasOpenPorts() {
				continue
			}

			if streams(format) {
				if err := scan.WriteReports(w, format, []*scan.Report{report}); err != nil {
					return err
				}
				continue
			}
			reports = append(reports, report)
		}
	}

	if !streams(format) {
		if reports == nil {
			reports = []*scan.Report{}
		}
		if err := scan.WriteReports(w, format, reports); err != nil {
			return err
		}
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		log.Debugf("Metrics written to %s", cfg.MetricsFile)
	}

	return nil
}

func scanTarget(ctx context.Context, scanner scan.Scanner, host string, ports []uint16, cfg *Config) *scan.Report {
	info := scan.DescribeHost(ctx, host, cfg.Timeout())
	report := scanner.Scan(ctx, host, ports)
	if info != (scan.Host{}) {
		report.Host = &info
	}
	return report
}

// text and table output is written per target as each scan finishes
func streams(format scan.Format) bool {
	return format == scan.FormatText || format == scan.FormatTable
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/torotation/app"
	"github.com/kilianp07/torotation/config"
)

// noNames lets --tos appear without a value; it is dropped by normalisation.
const noNames = " "

type rootFlags struct {
	cfgPath      string
	tos          []string
	toFile       bool
	days         int
	startDate    string
	format       string
	namesFile    string
	output       string
	backupPolicy string
	metricsFile  string
	logLevel     string
}

// Execute runs the CLI.
func Execute() error { return newRootCmd().Execute() }

func newRootCmd(opts ...app.Option) *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "torotation [--tos NAME...] [-f] [--days NUM] [--start-date YYYY-MM-DD]",
		Short: "Generate the weekly technical owner rotation",
		Long: `Assigns a primary and a backup technical owner (TO) to every Wednesday
of the rotation period. Owners are taken from --tos or, when none are given,
from the names file (one name per line, blank and "---" lines ignored).
Names after --tos end at the next flag; a word following later flags is
rejected.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f, opts)
		},
	}

	fl := cmd.Flags()
	// Parsing stops at the first positional so run can tell the names that
	// follow --tos from words placed after later flags.
	fl.SetInterspersed(false)
	fl.StringVarP(&f.cfgPath, "config", "c", "", "optional configuration file (yaml or json)")
	fl.StringArrayVar(&f.tos, "tos", nil, "owners in rotation order, space separated")
	fl.Lookup("tos").NoOptDefVal = noNames
	fl.BoolVarP(&f.toFile, "file", "f", false, "write to the output file instead of the terminal")
	fl.IntVar(&f.days, "days", config.DefaultDays, "rotation period in days")
	fl.StringVar(&f.startDate, "start-date", "", "first day of the period as YYYY-MM-DD (default today)")
	fl.StringVar(&f.format, "format", "", "output format: table, blocks, csv, json or yaml")
	fl.StringVar(&f.namesFile, "names-file", "", "owner list read when --tos is empty (default TO_List.txt)")
	fl.StringVar(&f.output, "output", "", "file overwritten by --file (default TO_Rotation.txt)")
	fl.StringVar(&f.backupPolicy, "backup-policy", "", "first week backup: wrap, blank or primary")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

func run(cmd *cobra.Command, args []string, f *rootFlags, opts []app.Option) error {
	fl := cmd.Flags()
	if len(args) > 0 && !fl.Changed("tos") {
		return fmt.Errorf("unexpected arguments %q, list owners with --tos", args)
	}
	names, rest := splitNames(args)
	if len(rest) > 0 {
		if err := fl.Parse(rest); err != nil {
			return err
		}
		if extra := fl.Args(); len(extra) > 0 {
			return fmt.Errorf("unexpected arguments %q, owner names must directly follow --tos", extra)
		}
	}
	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(f.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg, fl.Changed, *f, names)

	opts = append([]app.Option{app.WithStdout(cmd.OutOrStdout())}, opts...)
	svc, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

// splitNames returns the leading words of args, which continue the --tos
// list, and the remaining arguments starting at the first flag.
func splitNames(args []string) (names, rest []string) {
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// applyFlags overrides configuration values with explicitly set flags.
// names continue the --tos list.
func applyFlags(cfg *config.Config, changed func(string) bool, f rootFlags, names []string) {
	if changed("tos") {
		cfg.Roster.Names = append(append([]string{}, f.tos...), names...)
	}
	if changed("file") {
		cfg.Output.ToFile = f.toFile
	}
	if changed("days") {
		cfg.Rotation.Days = f.days
	}
	if changed("start-date") {
		cfg.Rotation.StartDate = f.startDate
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("names-file") {
		cfg.Roster.File = f.namesFile
	}
	if changed("output") {
		cfg.Output.Path = f.output
	}
	if changed("backup-policy") {
		cfg.Rotation.BackupPolicy = f.backupPolicy
	}
	if changed("metrics-file") {
		cfg.Metrics.TextfilePath = f.metricsFile
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
}

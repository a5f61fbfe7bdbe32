package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel"
	"github.com/aretw0/satchel/internal/platform"
	"github.com/aretw0/satchel/pkg/assistant"
)

var (
	verbose  bool
	dataFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "A personal assistant for contacts, notes and birthday reminders",
	Long: `Satchel keeps your contacts and notes in a single plain file.
Phone numbers, emails and birthdays are validated on the way in, notes
carry #tags, and everything is searchable from the command line or an
interactive shell.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		} else if cfg, err := platform.LoadConfig(); err == nil {
			level = parseLevel(cfg.LogLevel)
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// openService builds the assistant against the configured data file,
// honoring the --file flag when set.
func openService() (*assistant.Service, error) {
	cfg, err := platform.LoadConfig()
	if err != nil {
		return nil, err
	}

	path := cfg.DataFile
	if dataFile != "" {
		path = dataFile
	}

	return satchel.New(path,
		satchel.WithLogger(slog.Default()),
		satchel.WithCountryCode(cfg.CountryCode),
	)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Path to the data file (overrides SATCHEL_DATA_FILE)")

	for _, c := range commandTable() {
		rootCmd.AddCommand(cobraCommand(c))
	}
}

// cobraCommand wraps a table entry into a cobra subcommand. The closure
// captures the entry by value so the loop in init stays safe.
func cobraCommand(c command) *cobra.Command {
	args := cobra.MinimumNArgs(c.minArgs)
	if c.maxArgs == 0 && c.minArgs == 0 {
		args = cobra.NoArgs
	} else if c.maxArgs > 0 {
		args = cobra.RangeArgs(c.minArgs, c.maxArgs)
	}

	return &cobra.Command{
		Use:   c.usage,
		Short: c.short,
		Args:  args,
		Run: func(cmd *cobra.Command, cmdArgs []string) {
			svc, err := openService()
			if err != nil {
				fatal("Failed to initialize satchel", err)
			}

			out, err := c.run(cmd.Context(), svc, cmdArgs)
			if err != nil {
				fatal("Error", err)
			}
			fmt.Println(out)
		},
	}
}

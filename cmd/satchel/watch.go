package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Watch the data file and print change events",
	Long: `Watch the data file for external modifications and print one line
per changed record. An optional doublestar pattern filters events by
record ID, e.g. 'contacts/*' or 'notes/*'.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}

		svc, err := openService()
		if err != nil {
			fatal("Failed to initialize satchel", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")
		for event := range events {
			fmt.Println(event.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

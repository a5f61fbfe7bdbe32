package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/satchel"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of satchel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("satchel version %s\n", strings.TrimSpace(satchel.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

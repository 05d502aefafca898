package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print current version of sudokukit",
	Run:   printVersion,
	Args:  cobra.NoArgs,
}

var nameOnly bool

func init() {
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "n", false, "print version name only")
	mainCommand.AddCommand(commandVersion)
}

func printVersion(cmd *cobra.Command, args []string) {
	version := Version
	if !nameOnly {
		version = "sudokukit " + version + " (" + runtime.Version() + ", " + runtime.GOOS + ", " + runtime.GOARCH + ")"
	}
	os.Stdout.WriteString(version + "\n")
}

// flatdump is a command line tool for flat event frame files and archives.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/flatesd/cmd/flatdump/command"
)

const (
	cliName        = "flatdump"
	cliDescription = "inspect, import and export flat detector events"
)

var rootCmd = &cobra.Command{
	Use:           cliName,
	Short:         cliDescription,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().StringVar(&command.GlobalFlags.Format, "format", command.FormatTable, "output format, table or json")
	rootCmd.PersistentFlags().BoolVar(&command.GlobalFlags.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		command.NewInspectCommand(),
		command.NewImportCommand(),
		command.NewListCommand(),
		command.NewExportCommand(),
	)
}

func main() {
	MustStart()
}

func Start() error {
	return rootCmd.Execute()
}

func MustStart() {
	if err := Start(); err != nil {
		color.Red("%s error: %s", cliName, err)
		os.Exit(-1)
	}
}

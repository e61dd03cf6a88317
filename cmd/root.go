package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xcsc",
	Short: "A declarative XML-to-C# class compiler",
	Long: `xcsc reads a strict subset of XML describing nested declarations and
variables, infers a minimal set of structural classes from the shapes it
finds, and emits the corresponding C# source: one file per class plus a
Main.cs wiring up the declared instances.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {}

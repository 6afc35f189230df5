// Package main provides the CLI entrypoint for newtype-generator.
//
// newtype-generator reads YAML newtype declarations and emits Go wrapper
// types whose checked constructors enforce the declared sanitization and
// validation rules.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"newtype-generator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "newtype-generator",
	Short: "Generate guarded Go newtypes from YAML declarations",
	Long: `newtype-generator turns declarative newtype specifications into Go
wrapper types. Each generated type hides its inner value behind a
constructor that sanitizes and validates input, plus the standard
interface implementations the declaration asks for.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

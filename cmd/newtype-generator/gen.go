package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newtype-generator/internal/config"
	"newtype-generator/internal/expand"
	"newtype-generator/internal/gen"
	"newtype-generator/internal/schema"
)

var genCmd = &cobra.Command{
	Use:   "gen <declarations.yaml> [more.yaml...]",
	Short: "Generate newtype wrappers from declaration files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGen,
}

func init() {
	genCmd.Flags().StringP("config", "c", "", "config file (yaml, toml or json)")
	genCmd.Flags().StringP("output", "o", "", "output directory for generated files")
	genCmd.Flags().StringP("package", "p", "", "package name for generated files")
	genCmd.Flags().Bool("comments", true, "emit explanatory doc comments")
}

func runGen(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:      cfg.Package,
		OutputDir:        cfg.Output,
		GenerateComments: cfg.Comments,
		DebugUnformatted: cfg.DebugUnformatted,
	})

	var files []gen.GeneratedFile

	for _, path := range args {
		f, err := schema.LoadFile(path)
		if err != nil {
			return err
		}

		generated, err := expand.File(g, f)
		if err != nil {
			return err
		}

		files = append(files, generated...)
	}

	if err := gen.WriteFiles(files, cfg.Output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s) in %s\n", len(files), cfg.Output)

	return nil
}

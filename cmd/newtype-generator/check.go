package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"newtype-generator/internal/expand"
	"newtype-generator/internal/gen"
	"newtype-generator/internal/schema"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	noteColor = color.New(color.FgYellow)
)

var checkCmd = &cobra.Command{
	Use:   "check <declarations.yaml> [more.yaml...]",
	Short: "Validate declaration files without writing output",
	Long: `check runs the full pipeline, parsing, trait validation and code
generation included, but writes nothing to disk. The exit status reports
whether every declaration would generate cleanly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Empty OutputDir keeps the formatter's debug sidecar off.
	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = ""

	g := gen.NewGenerator(cfg)

	total := 0

	for _, path := range args {
		f, err := schema.LoadFile(path)
		if err != nil {
			return err
		}

		if _, err := expand.File(g, f); err != nil {
			return err
		}

		for _, nt := range f.Newtypes {
			// The default literal is trusted as declared, never run through
			// the guard. Worth a note when both are present.
			if nt.Attrs.Default != nil && len(nt.Attrs.Validate) > 0 {
				noteColor.Fprintf(cmd.OutOrStdout(), "note: %s: default %q is not checked against %s's validators\n",
					nt.Attrs.Default.Span, nt.Attrs.Default.Value, nt.Meta.TypeName.Name)
			}
		}

		total += len(f.Newtypes)
	}

	okColor.Fprint(cmd.OutOrStdout(), "ok")
	fmt.Fprintf(cmd.OutOrStdout(), ": %d declaration(s) in %d file(s)\n", total, len(args))

	return nil
}

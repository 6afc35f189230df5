package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"newtype-generator/internal/diagnostic"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	spanColor = color.New(color.Bold)
	codeColor = color.New(color.FgCyan)
)

// printError renders one error to stderr. Positioned diagnostics come out
// as file:line:column plus a stable code so declarations can be fixed by
// grepping for either.
func printError(err error) {
	var diag *diagnostic.Error
	if !errors.As(err, &diag) {
		errColor.Fprint(os.Stderr, "error")
		fmt.Fprintf(os.Stderr, ": %v\n", err)

		return
	}

	if !diag.Span.IsZero() {
		spanColor.Fprintf(os.Stderr, "%s: ", diag.Span)
	}

	errColor.Fprint(os.Stderr, "error")
	fmt.Fprint(os.Stderr, " ")
	codeColor.Fprintf(os.Stderr, "[%s]", diag.Code)
	fmt.Fprintf(os.Stderr, ": %s\n", diag.Message)
}

package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/attrkit/attrkit/editors"
)

// PrintError renders an error with a bold red prefix. Resolution misses get a
// registration-gap hint since they indicate configuration, not runtime,
// trouble.
func PrintError(w io.Writer, err error) {
	bold := color.New(color.FgRed, color.Bold)
	bold.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)

	var nf *editors.NotFoundError
	if errors.As(err, &nf) {
		hint := color.New(color.FgYellow)
		hint.Fprintln(w, "No registration covers this attribute. Add a dedicated entry for the")
		hint.Fprintf(w, "component or a type editor compatible with %q to the registration file.\n",
			nf.Attribute.DeclaredType)
	}
}

// Success renders a bold green check line.
func Success(w io.Writer, format string, args ...interface{}) {
	ok := color.New(color.FgGreen, color.Bold)
	ok.Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

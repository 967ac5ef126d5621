package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// filled at link time:
// -ldflags '-X main.Version=$(VERSION) -X main.Revision=$(REVISION)'
var (
	Version  = "0.0.0+unknown"
	Revision = "+unknown"
)

func displayVersion(w io.Writer) {
	fmt.Fprintf(w, `version: %s
revision: %s
go: %s
`, Version, Revision, runtime.Version())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:        "version",
		Short:      "Details about version, revision and compiler",
		SuggestFor: []string{"Version", "v", "V"},
		Args:       cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion(cmd.OutOrStdout())
		},
	}
}

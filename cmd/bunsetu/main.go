package main

import (
	"fmt"
	"io"
	"os"
)

// UI holds the output streams of the commands; tests inject buffers.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	os.Exit(run(os.Args, UI{Out: os.Stdout, Err: os.Stderr}))
}

// run executes the command line and returns the process exit code.
func run(args []string, ui UI) int {
	if err := newApp(ui).Run(args); err != nil {
		fprintErr(ui.Err, err)
		return 1
	}

	return 0
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "bunsetu: %v\n", err)
}

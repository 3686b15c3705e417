package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/pagelayout/cmd"
	"github.com/thenoetrevino/pagelayout/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		// Failures rendered by a formatter are not printed twice
		var exitErr *cli.ExitCodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.ExitCode(err))
}

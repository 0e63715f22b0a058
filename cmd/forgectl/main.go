package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"forgectl/internal/launcher"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		if errors.Is(err, launcher.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

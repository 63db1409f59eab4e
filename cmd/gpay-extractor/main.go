package main

import (
	"errors"
	"os"

	"github.com/insightdelivered/gpay-extractor/internal/commands"
	"github.com/insightdelivered/gpay-extractor/internal/verify"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		// Failed verification is a distinct exit condition from fatal
		// input or processing errors.
		if errors.Is(err, verify.ErrChecksFailed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

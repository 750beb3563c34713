package main

import (
	"fmt"
	"os"

	"github.com/11090815/hypernum/cmd/bigcalc/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"ai-roadmap/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "roadmap: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/organize-rs/organize-sub000/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := cli.NewRootCmd()

	if err := doc.GenMan(rootCmd, cli.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

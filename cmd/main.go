package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/gi4nks/wrap-pkg-config/cmd/commands"
)

func main() {
	if err := commands.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/sdiehl/ipython/cmd/ipydisplay"
)

func main() {
	rootCmd := ipydisplay.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

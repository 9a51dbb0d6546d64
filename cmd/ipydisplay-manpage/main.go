package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/sdiehl/ipython/cmd/ipydisplay"
	"github.com/sdiehl/ipython/internal/version"
)

func main() {
	rootCmd := ipydisplay.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "IPYDISPLAY",
		Section: "1",
		Source:  "ipydisplay " + version.Version,
		Manual:  "ipydisplay manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

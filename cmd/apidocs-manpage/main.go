package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/lockstate/rspec-api-documentation/cmd/apidocs"
	"github.com/lockstate/rspec-api-documentation/internal/version"
)

func main() {
	rootCmd := apidocs.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "APIDOCS",
		Section: "1",
		Source:  "apidocs " + version.Version,
		Manual:  "apidocs manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

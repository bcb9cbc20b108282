package main

import (
	"os"

	"github.com/lockstate/rspec-api-documentation/cmd/apidocs"
)

func main() {
	os.Exit(apidocs.Execute())
}

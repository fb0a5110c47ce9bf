package main

import (
	"os"

	"github.com/asutton/beaker-old/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	annotatecmder "github.com/marginaliaco/annotate/cmd/annotate"
)

func main() {
	cmd := annotatecmder.NewAnnotateCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

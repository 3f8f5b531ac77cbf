package main

import (
	"os"

	"github.com/faraz/beestudy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

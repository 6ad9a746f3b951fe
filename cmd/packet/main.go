package main

import (
	"os"

	"github.com/jacobjonsson/packet/cmd/packet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/msto63/bologna/cmd/bologna/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

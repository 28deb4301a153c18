package main

import (
	"os"

	"github.com/priyankc/mentora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

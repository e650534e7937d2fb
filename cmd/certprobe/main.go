package main

import (
	"os"

	"github.com/certwatch-app/certprobe/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

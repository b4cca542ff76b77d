package main

import (
	"os"

	"github.com/foxlang/fox/cmd/fox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/sandrolain/gopratt/cmd/pratt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

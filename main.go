package main

import (
	"os"

	"github.com/smartinez/hipolito/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

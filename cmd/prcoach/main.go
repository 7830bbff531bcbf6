package main

import (
	"os"

	"prcoach/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

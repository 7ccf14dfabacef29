package main

import (
	"os"

	"github.com/animesh-sketch/red-flag-identifier/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

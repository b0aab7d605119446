package main

import (
	"os"

	"gitstack.dev/stack/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}

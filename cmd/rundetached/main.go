// Package main is the entry point for the rundetached application
package main

import (
	"os"

	"rundetached/cmd/rundetached/commands"
)

func main() {
	os.Exit(commands.Execute())
}

package main

import (
	"os"

	"github.com/sonemaro/minigrep/cmd/minigrep/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args, commands.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}

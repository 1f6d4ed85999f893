package main

import (
	"os"

	"github.com/saylorsolutions/xorb64/cmd/internal"
	"github.com/spf13/afero"
)

var version = "dev"

func main() {
	app := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		prompt: terminalPrompt(os.Stdin, os.Stderr),
	}
	if err := app.run(os.Args[1:]); err != nil {
		internal.Fatal(err)
	}
}

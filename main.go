package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/LondonBrew/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("London Brew"), kong.Description("London Brew scrapes the London CAMRA brewery list."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}

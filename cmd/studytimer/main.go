package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/studytimer/studytimer/app"
	"github.com/studytimer/studytimer/internal/pathutil"
)

func run(args []string) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

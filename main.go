package main

import (
	"errors"
	"log/slog"
	"os"

	"favicongen/render"

	"github.com/alecthomas/kong"
)

var cli struct {
	Generate render.CLICmd `cmd:"" default:"1" help:"Render the radio favicon set"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("favicongen"),
		kong.Description("Renders the radio favicon as favicon.ico plus 16x16 and 32x32 PNGs."))

	if err := kctx.Run(); err != nil {
		if !errors.Is(err, render.ErrCapabilityUnavailable) {
			slog.Error("could not generate favicon set", "error", err)
		}
		os.Exit(1)
	}
}

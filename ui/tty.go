package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactive *bool

// SetInteractive overrides terminal detection, e.g. for --no-color.
func SetInteractive(enabled bool) {
	interactive = &enabled
}

func SupportsANSICodes() bool {
	if interactive != nil {
		return *interactive
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stdout
)

// SetOutput redirects console output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

func Output() io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	return out
}

func Info(format string, a ...interface{}) {
	fmt.Fprintf(Output(), format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	fmt.Fprintf(Output(), "%s %s\n", GreenText("✔"), fmt.Sprintf(format, a...))
}

func Warn(format string, a ...interface{}) {
	fmt.Fprintf(Output(), "%s %s\n", YellowText("⚠"), fmt.Sprintf(format, a...))
}

func Error(err error) {
	fmt.Fprintln(os.Stderr, RedText(err.Error()))
}

// Debug only prints in dev mode.
func Debug(format string, a ...interface{}) {
	if debug {
		fmt.Fprintf(Output(), "%s\n", GrayText(fmt.Sprintf(format, a...)))
	}
}

var debug bool

func SetDebug(enabled bool) {
	debug = enabled
}

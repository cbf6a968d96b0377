package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner shows an animated message. Without a terminal it prints the
// message once instead.
func StartSpinner(cfg *SpinnerCfg) {
	if !SupportsANSICodes() {
		if cfg.Message != "" {
			Info("%s", cfg.Message)
		}
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = spinner.CharSets[14]
	}
	if cfg.Duration == 0 {
		cfg.Duration = 100 * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = Output()

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		if msg != "" {
			Info("%s", msg)
		}
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}
	s.Stop()
	s = nil
}

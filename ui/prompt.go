package ui

import (
	"github.com/manifoldco/promptui"
)

// PromptPause blocks until the user presses Enter.
func PromptPause() error {
	prompt := promptui.Prompt{
		Label:   "Press Enter to exit",
		Default: "",
	}
	_, err := prompt.Run()
	if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
		return nil
	}
	return err
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/orchardctl/cli/configs"
	"github.com/orchardctl/cli/ui"
)

func (h *Handler) Panic(ctx context.Context, recovered interface{}, stack string, command string, args []string) {
	ui.Error(fmt.Errorf("🚨 orchardctl %s crashed: %v", strings.TrimSpace(command+" "+strings.Join(args, " ")), recovered))
	if configs.IsDevMode() {
		fmt.Fprintln(ui.Output(), ui.GrayText(stack))
	} else {
		ui.Info("Run again with ORCHARDCTL_ENV=develop to see the stack trace.")
	}
}

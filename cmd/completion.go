package cmd

import (
	"context"
	"fmt"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/ui"
)

func (h *Handler) Completion(ctx context.Context, req *entity.CommandRequest) error {
	out := ui.Output()
	root := req.Cmd.Root()
	switch req.Args[0] {
	case "bash":
		return root.GenBashCompletion(out)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	}
	return fmt.Errorf("unsupported shell %q", req.Args[0])
}

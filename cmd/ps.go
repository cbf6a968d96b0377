package cmd

import (
	"context"
	"fmt"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/ui"
)

const commandLineWidth = 120

func (h *Handler) Ps(ctx context.Context, req *entity.CommandRequest) error {
	names, err := req.Cmd.Flags().GetStringSlice("name")
	if err != nil {
		return err
	}

	processes, err := h.ctrl.FindProcesses(ctx, entity.ProcessFilter{
		Argument: req.Args[0],
		Names:    names,
	})
	if err != nil {
		return err
	}
	if len(processes) == 0 {
		ui.Info("No process found with %q in its command line.", req.Args[0])
		return nil
	}

	for _, p := range processes {
		fmt.Fprintf(ui.Output(), "%s  %s  %s\n",
			ui.Bold(fmt.Sprintf("%7d", p.Pid)),
			ui.MagentaText(p.Name),
			ui.Truncate(p.CommandLine, commandLineWidth))
	}
	return nil
}

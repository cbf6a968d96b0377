package cmd

import (
	"context"
	"fmt"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/ui"
)

func (h *Handler) Init(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	name, err := flags.GetString("name")
	if err != nil {
		return err
	}
	moduleName, err := flags.GetString("module")
	if err != nil {
		return err
	}
	themeName, err := flags.GetString("theme")
	if err != nil {
		return err
	}
	nugetSource, err := flags.GetString("nuget-source")
	if err != nil {
		return err
	}

	path := "."
	if len(req.Args) > 0 {
		path = req.Args[0]
	}

	created, err := h.ctrl.Scaffold(ctx, &entity.ScaffoldRequest{
		Path:        path,
		Name:        name,
		ModuleName:  moduleName,
		ThemeName:   themeName,
		NuGetSource: nugetSource,
	})
	if err != nil {
		return err
	}

	ui.Success("Created Orchard Core solution %s", ui.MagentaText(name))
	fmt.Fprint(ui.Output(), ui.UnorderedList(created))
	return nil
}

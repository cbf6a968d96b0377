package cmd

import (
	"context"
	"runtime"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/ui"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	ui.Info("orchardctl version %s (%s %s/%s)", constants.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

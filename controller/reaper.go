package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

// FindProcesses lists processes matching filter, never including this one.
func (c *Controller) FindProcesses(ctx context.Context, filter entity.ProcessFilter) ([]*entity.ProcessInfo, error) {
	processes, err := c.finder.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	self := os.Getpid()
	matches := make([]*entity.ProcessInfo, 0, len(processes))
	for _, p := range processes {
		if p.Pid == self {
			continue
		}
		matches = append(matches, p)
	}
	return matches, nil
}

// FindHostProcesses lists the dotnet and IIS Express processes whose command
// line references siteName.
func (c *Controller) FindHostProcesses(ctx context.Context, siteName string) ([]*entity.ProcessInfo, error) {
	return c.FindProcesses(ctx, entity.ProcessFilter{
		Argument: siteName,
		Names:    constants.HostProcessNames,
	})
}

// TerminateAll kills every process and then waits for the OS to release
// their file handles.
func (c *Controller) TerminateAll(ctx context.Context, processes []*entity.ProcessInfo) error {
	if len(processes) == 0 {
		return nil
	}

	for _, p := range processes {
		ui.Info("Terminating application host process running %q.", p.CommandLine)
		if err := c.kill(p.Pid); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("terminate process %d: %w", p.Pid, err)
		}
	}

	return sleep(ctx, c.timings.settle)
}

// Stop kills a process started by the launcher and waits for it to exit.
func (c *Controller) Stop(process entity.HostProcess) error {
	if process == nil {
		return nil
	}
	if err := process.Kill(); err != nil {
		return fmt.Errorf("stop application host process %d: %w", process.Pid(), err)
	}
	if !process.Wait(c.timings.stopTimeout) {
		return fmt.Errorf("application host process %d did not exit within %s", process.Pid(), c.timings.stopTimeout)
	}
	return nil
}

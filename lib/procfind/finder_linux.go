//go:build linux

package procfind

import (
	"context"
	"strings"

	"github.com/orchardctl/cli/entity"
	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
)

type procFinder struct {
	mountPoint string
}

func newPlatformFinder() Finder {
	return &procFinder{mountPoint: procfs.DefaultMountPoint}
}

func (f *procFinder) Find(ctx context.Context, filter entity.ProcessFilter) ([]*entity.ProcessInfo, error) {
	fs, err := procfs.NewFS(f.mountPoint)
	if err != nil {
		return nil, errors.Wrap(err, "open process table")
	}
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, errors.Wrap(err, "list processes")
	}

	var matches []*entity.ProcessInfo
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Processes can exit while the table is walked; skip those.
		args, err := p.CmdLine()
		if err != nil || len(args) == 0 {
			continue
		}
		commandLine := strings.Join(args, " ")
		name := executableName(p, args)
		if Matches(filter, name, commandLine) {
			matches = append(matches, &entity.ProcessInfo{
				Pid:         p.PID,
				Name:        name,
				CommandLine: commandLine,
			})
		}
	}
	return matches, nil
}

// executableName prefers argv[0] because comm is truncated to 15 bytes.
func executableName(p procfs.Proc, args []string) string {
	if args[0] != "" {
		return NormalizeName(args[0])
	}
	comm, err := p.Comm()
	if err != nil {
		return ""
	}
	return NormalizeName(comm)
}

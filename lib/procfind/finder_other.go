//go:build !linux && !windows

package procfind

import (
	"context"
	"os/exec"

	"github.com/orchardctl/cli/entity"
	"github.com/pkg/errors"
)

type psFinder struct{}

func newPlatformFinder() Finder {
	return &psFinder{}
}

func (f *psFinder) Find(ctx context.Context, filter entity.ProcessFilter) ([]*entity.ProcessInfo, error) {
	out, err := exec.CommandContext(ctx, "ps", "-axww", "-o", "pid=,args=").Output()
	if err != nil {
		return nil, errors.Wrap(err, "run ps")
	}

	var matches []*entity.ProcessInfo
	for _, info := range parsePS(string(out)) {
		if Matches(filter, info.Name, info.CommandLine) {
			matches = append(matches, info)
		}
	}
	return matches, nil
}

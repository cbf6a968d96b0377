//go:build windows

package procfind

import (
	"context"

	"github.com/orchardctl/cli/entity"
	"github.com/pkg/errors"
	"github.com/yusufpapurcu/wmi"
)

type win32Process struct {
	ProcessId   uint32
	Name        string
	CommandLine *string
}

type wmiFinder struct{}

func newPlatformFinder() Finder {
	return &wmiFinder{}
}

func (f *wmiFinder) Find(ctx context.Context, filter entity.ProcessFilter) ([]*entity.ProcessInfo, error) {
	var rows []win32Process
	query := wmiQuery(filter.Argument)
	if err := wmi.Query(query, &rows); err != nil {
		return nil, errors.Wrap(err, "query Win32_Process")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []*entity.ProcessInfo
	for _, row := range rows {
		if row.CommandLine == nil {
			continue
		}
		if Matches(filter, row.Name, *row.CommandLine) {
			matches = append(matches, &entity.ProcessInfo{
				Pid:         int(row.ProcessId),
				Name:        NormalizeName(row.Name),
				CommandLine: *row.CommandLine,
			})
		}
	}
	return matches, nil
}

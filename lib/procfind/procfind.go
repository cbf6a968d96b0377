// Package procfind looks up running processes by a fragment of their command
// line. The enumeration strategy depends on the platform: the /proc table on
// Linux, WMI on Windows and ps(1) elsewhere.
package procfind

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/orchardctl/cli/entity"
)

type Finder interface {
	Find(ctx context.Context, filter entity.ProcessFilter) ([]*entity.ProcessInfo, error)
}

// New returns the finder for the current platform.
func New() Finder {
	return newPlatformFinder()
}

// Kill terminates the process with the given pid.
func Kill(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Kill()
}

// Matches applies filter to a single process.
func Matches(filter entity.ProcessFilter, name, commandLine string) bool {
	if filter.Argument != "" &&
		!strings.Contains(strings.ToUpper(commandLine), strings.ToUpper(filter.Argument)) {
		return false
	}
	if len(filter.Names) == 0 {
		return true
	}
	normalized := NormalizeName(name)
	for _, candidate := range filter.Names {
		if NormalizeName(candidate) == normalized {
			return true
		}
	}
	return false
}

// NormalizeName reduces an executable path to a lower-case base name without
// a Windows ".exe" suffix.
func NormalizeName(name string) string {
	name = strings.ToLower(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	return strings.TrimSuffix(name, ".exe")
}

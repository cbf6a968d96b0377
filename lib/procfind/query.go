package procfind

import (
	"strconv"
	"strings"

	"github.com/orchardctl/cli/entity"
)

var wqlLikeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`[`, `[[]`,
	`%`, `[%]`,
	`_`, `[_]`,
)

// wqlLikeLiteral escapes s for use inside a quoted WQL LIKE pattern so it only
// ever matches literally.
func wqlLikeLiteral(s string) string {
	return wqlLikeEscaper.Replace(s)
}

func wmiQuery(argument string) string {
	const base = "SELECT ProcessId, Name, CommandLine FROM Win32_Process"
	if argument == "" {
		return base
	}
	return base + " WHERE CommandLine LIKE '%" + wqlLikeLiteral(argument) + "%'"
}

// parsePS parses the output of `ps -o pid=,args=`.
func parsePS(output string) []*entity.ProcessInfo {
	var infos []*entity.ProcessInfo
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		commandLine := strings.TrimSpace(fields[1])
		name := commandLine
		if i := strings.IndexByte(commandLine, ' '); i >= 0 {
			name = commandLine[:i]
		}
		infos = append(infos, &entity.ProcessInfo{
			Pid:         pid,
			Name:        NormalizeName(name),
			CommandLine: commandLine,
		})
	}
	return infos
}

package gateway

import (
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/ui"
	"github.com/pkg/errors"
)

type childProcess struct {
	cmd         *exec.Cmd
	commandLine string
	done        chan struct{}

	mu       sync.Mutex
	exitCode int
}

// StartProcess starts req as a child process and forwards its output to the
// console. The process is not tied to a context so it can be kept alive.
func (g *Gateway) StartProcess(req *entity.LaunchRequest) (entity.HostProcess, error) {
	cmd := exec.Command(req.Executable, req.Args...)
	cmd.Dir = req.Dir
	cmd.Stdout = ui.Output()
	cmd.Stderr = ui.Output()

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "start %s", req.Executable)
	}

	p := &childProcess{
		cmd:         cmd,
		commandLine: strings.Join(append([]string{req.Executable}, req.Args...), " "),
		done:        make(chan struct{}),
	}
	go p.wait()
	return p, nil
}

func (p *childProcess) wait() {
	err := p.cmd.Wait()
	code := 0
	if exitError, ok := err.(*exec.ExitError); ok {
		code = exitError.ExitCode()
	} else if err != nil {
		code = -1
	}
	p.mu.Lock()
	p.exitCode = code
	p.mu.Unlock()
	close(p.done)
}

func (p *childProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *childProcess) CommandLine() string {
	return p.commandLine
}

func (p *childProcess) Exited() (bool, int) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return true, p.exitCode
	default:
		return false, 0
	}
}

func (p *childProcess) Kill() error {
	if exited, _ := p.Exited(); exited {
		return nil
	}
	// The child may exit on its own before the wait goroutine records it.
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		if exited, _ := p.Exited(); exited {
			return nil
		}
		return err
	}
	return nil
}

func (p *childProcess) Wait(timeout time.Duration) bool {
	select {
	case <-p.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

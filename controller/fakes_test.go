package controller

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/gateway"
	"github.com/orchardctl/cli/random"
	"github.com/orchardctl/cli/ui"
	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	pid    int
	exited bool
	code   int
	killed bool
}

func (p *fakeProcess) Pid() int            { return p.pid }
func (p *fakeProcess) CommandLine() string { return "dotnet fake.dll" }
func (p *fakeProcess) Exited() (bool, int) { return p.exited, p.code }
func (p *fakeProcess) Wait(time.Duration) bool {
	return p.exited
}

func (p *fakeProcess) Kill() error {
	if p.exited {
		return nil
	}
	p.killed = true
	p.exited = true
	p.code = -1
	return nil
}

// exit simulates the process terminating on its own.
func (p *fakeProcess) exit(code int) {
	p.exited = true
	p.code = code
}

type fakeGateway struct {
	calls []string

	dotnet func(dir string, args []string) (int, error)

	process    *fakeProcess
	startErr   error
	launchReq  *entity.LaunchRequest
	probe      func(n int) (int, error)
	probeCount int

	setupStatus  int
	setupErr     error
	setupPayload *entity.SetupPayload

	databases   map[string]bool
	createErr   error
	createCalls []string
	reachable   bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		process:     &fakeProcess{pid: 4242},
		probe:       func(int) (int, error) { return 200, nil },
		setupStatus: 200,
		databases:   map[string]bool{},
		reachable:   true,
	}
}

func (g *fakeGateway) Dotnet(ctx context.Context, dir string, args ...string) (int, error) {
	g.calls = append(g.calls, "dotnet "+strings.Join(args, " "))
	if g.dotnet == nil {
		return 0, nil
	}
	return g.dotnet(dir, args)
}

func (g *fakeGateway) StartProcess(req *entity.LaunchRequest) (entity.HostProcess, error) {
	g.calls = append(g.calls, "start")
	g.launchReq = req
	if g.startErr != nil {
		return nil, g.startErr
	}
	return g.process, nil
}

func (g *fakeGateway) Probe(ctx context.Context, url string) (int, error) {
	g.probeCount++
	g.calls = append(g.calls, "probe")
	return g.probe(g.probeCount)
}

func (g *fakeGateway) RunSetup(ctx context.Context, applicationURL string, payload *entity.SetupPayload) (*gateway.SetupResponse, error) {
	g.calls = append(g.calls, "setup")
	g.setupPayload = payload
	if g.setupErr != nil {
		return nil, g.setupErr
	}
	return &gateway.SetupResponse{StatusCode: g.setupStatus}, nil
}

func (g *fakeGateway) CreateDatabase(ctx context.Context, serverName, name string, opts entity.CreateDatabaseOptions) (bool, error) {
	g.calls = append(g.calls, "create "+name)
	g.createCalls = append(g.createCalls, name)
	if g.createErr != nil {
		return false, g.createErr
	}
	if g.databases[name] && !opts.Force {
		return false, nil
	}
	g.databases[name] = true
	return true, nil
}

func (g *fakeGateway) ServerReachable(ctx context.Context, serverName string, credentials *entity.SqlCredentials) bool {
	return g.reachable
}

type fakeFinder struct {
	processes []*entity.ProcessInfo
	filter    entity.ProcessFilter
	err       error
}

func (f *fakeFinder) Find(ctx context.Context, filter entity.ProcessFilter) ([]*entity.ProcessInfo, error) {
	f.filter = filter
	return f.processes, f.err
}

type testController struct {
	*Controller
	gtwy   *fakeGateway
	finder *fakeFinder
	killed []int
	opened []string
}

func newTestController(t *testing.T) *testController {
	t.Helper()
	tc := &testController{
		gtwy:   newFakeGateway(),
		finder: &fakeFinder{},
	}
	tc.Controller = &Controller{
		gtwy:       tc.gtwy,
		finder:     tc.finder,
		randomizer: random.New(),
		timings: timings{
			stopTimeout: time.Second,
		},
		kill: func(pid int) error {
			tc.killed = append(tc.killed, pid)
			return nil
		},
		openURL: func(url string) error {
			tc.opened = append(tc.opened, url)
			return nil
		},
		pause: func() error { return nil },
	}
	return tc
}

// captureOutput redirects the console for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	ui.SetInteractive(false)
	prev := ui.SetOutput(&buf)
	t.Cleanup(func() {
		ui.SetOutput(prev)
	})
	return &buf
}

// writeArtifact creates <project>/bin/Debug/<framework>/<site>.dll.
func writeArtifact(t *testing.T, projectPath, framework, siteName string) string {
	t.Helper()
	dir := filepath.Join(projectPath, "bin", "Debug", framework)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, siteName+".dll")
	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0o644))
	return path
}

// buildWritesArtifact makes the fake build produce the artifact.
func buildWritesArtifact(t *testing.T, g *fakeGateway, siteName string) {
	g.dotnet = func(dir string, args []string) (int, error) {
		if len(args) > 0 && args[0] == "build" {
			writeArtifact(t, args[1], "net8.0", siteName)
		}
		return 0, nil
	}
}

func connectionRefused() error {
	return fmt.Errorf("dial tcp 127.0.0.1:5000: connect: connection refused")
}

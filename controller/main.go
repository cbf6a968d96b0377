package controller

import (
	"context"
	"time"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/gateway"
	"github.com/orchardctl/cli/lib/procfind"
	"github.com/orchardctl/cli/random"
	"github.com/orchardctl/cli/ui"
	"github.com/pkg/browser"
)

// Gateway is the external I/O the controller drives.
type Gateway interface {
	Dotnet(ctx context.Context, dir string, args ...string) (int, error)
	StartProcess(req *entity.LaunchRequest) (entity.HostProcess, error)
	Probe(ctx context.Context, url string) (int, error)
	RunSetup(ctx context.Context, applicationURL string, payload *entity.SetupPayload) (*gateway.SetupResponse, error)
	CreateDatabase(ctx context.Context, serverName, name string, opts entity.CreateDatabaseOptions) (bool, error)
	ServerReachable(ctx context.Context, serverName string, credentials *entity.SqlCredentials) bool
}

type timings struct {
	settle       time.Duration
	initialDelay time.Duration
	pollInterval time.Duration
	stopTimeout  time.Duration
}

type Controller struct {
	gtwy       Gateway
	finder     procfind.Finder
	kill       func(pid int) error
	randomizer *random.Randomizer
	timings    timings
	openURL    func(url string) error
	pause      func() error
}

func New() *Controller {
	return &Controller{
		gtwy:       gateway.New(),
		finder:     procfind.New(),
		kill:       procfind.Kill,
		randomizer: random.New(),
		timings: timings{
			settle:       constants.ReapSettleInterval,
			initialDelay: constants.LaunchInitialDelay,
			pollInterval: constants.HealthPollInterval,
			stopTimeout:  10 * time.Second,
		},
		openURL: browser.OpenURL,
		pause:   ui.PromptPause,
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package entity

import "time"

type ProcessInfo struct {
	Pid         int
	Name        string
	CommandLine string
}

// ProcessFilter matches processes whose command line contains Argument,
// case-insensitively. An empty Names list matches every executable.
type ProcessFilter struct {
	Argument string
	Names    []string
}

// HostProcess is a child process started by the launcher.
type HostProcess interface {
	Pid() int
	CommandLine() string
	// Exited reports whether the process has exited and with which code.
	Exited() (bool, int)
	Kill() error
	// Wait blocks until the process has exited or the timeout elapses.
	Wait(timeout time.Duration) bool
}

type LaunchState int

const (
	LaunchNotStarted LaunchState = iota
	LaunchStarting
	LaunchPolling
	LaunchRunning
	LaunchCrashed
	LaunchTimedOut
)

func (s LaunchState) String() string {
	switch s {
	case LaunchNotStarted:
		return "NotStarted"
	case LaunchStarting:
		return "Starting"
	case LaunchPolling:
		return "Polling"
	case LaunchRunning:
		return "Running"
	case LaunchCrashed:
		return "Crashed"
	case LaunchTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

type LaunchRequest struct {
	Executable string
	Args       []string
	Dir        string
}

// LaunchResult is owned by the launcher until handed back to the orchestrator.
type LaunchResult struct {
	Process        HostProcess
	ApplicationURL string
	Started        bool
	State          LaunchState
}

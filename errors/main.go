package errors

import (
	"errors"
	"fmt"
)

type OrchardError error

var (
	InvalidTarget        OrchardError = errors.New("invalid target")
	InvalidDatabaseMode  OrchardError = errors.New("invalid database parameters")
	ConnectionError      OrchardError = errors.New("database server unreachable")
	ProvisioningError    OrchardError = errors.New("database provisioning failed")
	BuildFailed          OrchardError = errors.New("build failed")
	BuildArtifactMissing OrchardError = errors.New("build artifact missing")
	ProcessCrashed       OrchardError = errors.New("application host process crashed")
	HealthCheckFailed    OrchardError = errors.New("health check failed")
	HealthCheckTimeout   OrchardError = errors.New("health check timed out")
	SolutionNotFound     OrchardError = errors.New("solution directory not found")
	GitignoreExists      OrchardError = errors.New(".gitignore already exists")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New wraps kind with a formatted message. The result matches kind with Is.
func New(kind OrchardError, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Wrap is like New but keeps cause in the chain as well.
func Wrap(kind OrchardError, cause error, format string, args ...interface{}) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}
	return fmt.Sprintf("%s: %s (%v)", e.kind, e.msg, e.cause)
}

func (e *kindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

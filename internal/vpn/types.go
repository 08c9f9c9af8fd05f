package vpn

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoProfiles is returned when the profile directory holds no .conf files.
var ErrNoProfiles = errors.New("no OpenVPN profiles found")

type ConnectionStatus struct {
	Connected bool
	Profile   string
	Unit      string
}

// Runner is the set of service manager actions the switcher needs.
type Runner interface {
	ListServices(ctx context.Context) (string, error)
	Stop(ctx context.Context, unit string) error
	Start(ctx context.Context, unit string) error
}

// CommandError describes a service manager command that exited unsuccessfully.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed: %v\nOutput: %s", e.Command, e.Err, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UnitName returns the service unit that runs profile.
func UnitName(prefix, profile string) string {
	return prefix + profile
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

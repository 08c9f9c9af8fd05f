package vpn

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

type Executor interface {
	CommandContext(ctx context.Context, name string, arg ...string) *exec.Cmd
}

func NewStdExecutor() *StdExecutor {
	return &StdExecutor{}
}

type StdExecutor struct{}

func (e *StdExecutor) CommandContext(ctx context.Context, name string, arg ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, arg...)
}

type Paths struct {
	Systemctl string
	// Sudo prefixes stop and start. Empty runs systemctl directly.
	Sudo string
}

// SystemctlRunner talks to systemd through the systemctl binary.
type SystemctlRunner struct {
	executor Executor
	paths    Paths
	stdin    io.Reader
	log      logrus.FieldLogger
}

// NewSystemctlRunner wires stdin to the privileged commands so sudo can ask
// for a password.
func NewSystemctlRunner(executor Executor, paths Paths, stdin io.Reader, log logrus.FieldLogger) *SystemctlRunner {
	return &SystemctlRunner{
		executor: executor,
		paths:    paths,
		stdin:    stdin,
		log:      log,
	}
}

func (r *SystemctlRunner) ListServices(ctx context.Context) (string, error) {
	return r.run(ctx, false, "list-units", "--type=service")
}

func (r *SystemctlRunner) Stop(ctx context.Context, unit string) error {
	_, err := r.run(ctx, true, "stop", unit)
	return err
}

func (r *SystemctlRunner) Start(ctx context.Context, unit string) error {
	_, err := r.run(ctx, true, "start", unit)
	return err
}

func (r *SystemctlRunner) run(ctx context.Context, privileged bool, args ...string) (string, error) {
	name := r.paths.Systemctl
	if privileged && r.paths.Sudo != "" {
		args = append([]string{name}, args...)
		name = r.paths.Sudo
	}

	line := commandLine(name, args)
	r.log.Debugf("running %s", line)

	var stdout, stderr bytes.Buffer
	cmd := r.executor.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if privileged {
		cmd.Stdin = r.stdin
	}

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Command: line,
			Output:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// DryRunRunner lists services for real but only logs stop and start.
type DryRunRunner struct {
	Runner
	log logrus.FieldLogger
}

func NewDryRunRunner(runner Runner, log logrus.FieldLogger) *DryRunRunner {
	return &DryRunRunner{Runner: runner, log: log}
}

func (r *DryRunRunner) Stop(_ context.Context, unit string) error {
	r.log.Infof("dry run: would stop %s", unit)
	return nil
}

func (r *DryRunRunner) Start(_ context.Context, unit string) error {
	r.log.Infof("dry run: would start %s", unit)
	return nil
}

// Package operatorcli implements ports.Invoker by running the operator-cli
// executable as a child process. The binary is resolved from PATH on every
// call; nothing is validated up front.
package operatorcli

import (
	"bytes"
	"errors"
	"os/exec"
	"time"

	"github.com/corey/operator-gui/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultCommand is the executable invoked when Invoker.Command is empty.
const DefaultCommand = "operator-cli"

// Invoker runs `<Command> <action>` and reports the settled result.
type Invoker struct {
	Command  string
	Log      logrus.FieldLogger
	Observer ports.InvocationObserver // optional
}

// New creates an Invoker for command. An empty command means DefaultCommand.
func New(command string, log logrus.FieldLogger) *Invoker {
	if command == "" {
		command = DefaultCommand
	}
	return &Invoker{Command: command, Log: log}
}

// Invoke announces the invocation, starts the child on its own goroutine and
// returns a channel that receives the result once and is then closed.
// The result line is logged on the completion path, so it is written even
// when nobody is left reading the channel.
func (iv *Invoker) Invoke(action ports.Action) <-chan ports.Invocation {
	inv := ports.Invocation{
		ID:      uuid.NewString(),
		Action:  action,
		Command: iv.command(),
	}
	log := iv.logger().WithField("invocation", inv.ID)
	log.Infof("executing %s %s...", inv.Command, action)

	if iv.Observer != nil {
		iv.Observer.InvocationStarted(action)
	}

	done := make(chan ports.Invocation, 1)
	go func() {
		defer close(done)
		inv = run(inv)
		log.Infof("%s %s result: %v %s %s", inv.Command, action, inv.Err, inv.Stdout, inv.Stderr)
		if iv.Observer != nil {
			iv.Observer.InvocationFinished(inv)
		}
		done <- inv
	}()
	return done
}

// Path returns the PATH lookup result for the command, or "" if not found.
func (iv *Invoker) Path() string {
	path, err := exec.LookPath(iv.command())
	if err != nil {
		return ""
	}
	return path
}

func (iv *Invoker) command() string {
	if iv.Command == "" {
		return DefaultCommand
	}
	return iv.Command
}

func (iv *Invoker) logger() logrus.FieldLogger {
	if iv.Log == nil {
		return logrus.StandardLogger()
	}
	return iv.Log
}

// run executes the child and blocks until it exits. Working directory and
// environment are inherited from the server process.
func run(inv ports.Invocation) ports.Invocation {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(inv.Command, string(inv.Action))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	inv.Started = time.Now()
	inv.Err = cmd.Run()
	inv.Duration = time.Since(inv.Started)
	inv.Stdout = stdout.String()
	inv.Stderr = stderr.String()
	inv.ExitCode = exitCode(inv.Err, cmd)
	inv.Outcome = outcome(inv.Err)
	return inv
}

func outcome(err error) string {
	if err == nil {
		return ports.OutcomeOK
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ports.OutcomeExitError
	}
	return ports.OutcomeLaunchError
}

// exitCode returns 0 on success, the process exit status for an exit error
// and -1 when the process never ran or was killed by a signal.
func exitCode(err error, cmd *exec.Cmd) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}

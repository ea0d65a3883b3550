// Package ports defines the interfaces (contracts) that adapters must implement.
// The web adapter depends only on these, never on the concrete invoker or watcher.
package ports

import "time"

// Action is the single positional argument passed to the operator command.
type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

// Invocation is the settled result of one run of the operator command.
// It lives for the length of one request and is never persisted.
type Invocation struct {
	ID       string
	Action   Action
	Command  string
	Stdout   string
	Stderr   string
	Err      error  // launch or exit error, nil on success
	ExitCode int    // -1 when the process never ran
	Outcome  string // OutcomeOK, OutcomeExitError or OutcomeLaunchError
	Started  time.Time
	Duration time.Duration
}

// Invocation outcomes, used as metric labels.
const (
	OutcomeOK          = "ok"
	OutcomeExitError   = "exit_error"   // the child ran and exited non-zero
	OutcomeLaunchError = "launch_error" // the child never ran
)

// Invoker runs the operator command as a child process.
//
// Invoke starts the child on its own goroutine and returns immediately. The
// returned channel receives exactly one Invocation once the child has exited
// (or failed to launch) and is then closed. There is no timeout, no retry and
// no mutual exclusion between concurrent calls.
type Invoker interface {
	Invoke(action Action) <-chan Invocation
}

// InvocationObserver is notified around every invocation. Used for metrics.
type InvocationObserver interface {
	InvocationStarted(action Action)
	InvocationFinished(inv Invocation)
}

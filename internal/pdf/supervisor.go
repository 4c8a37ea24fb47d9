package pdf

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// State is the observable lifecycle of the supervised renderer process.
type State string

const (
	StateNotStarted State = "not_started"
	StateStarting   State = "starting"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

const (
	// StartupWait bounds how long Ensure waits for the renderer to answer
	// health checks after spawning it.
	StartupWait = 15 * time.Second
	// PollInterval is the delay between startup health probes.
	PollInterval = 800 * time.Millisecond
)

// Process is a handle to a spawned renderer. exec.Cmd satisfies it through
// execProcess; tests inject fakes.
type Process interface {
	// Wait blocks until the process exits.
	Wait() error
	// Terminate asks the process to stop. Best-effort, not awaited.
	Terminate() error
}

// Spawner starts the renderer process.
type Spawner func() (Process, error)

// HealthFunc probes the renderer. The production implementation is
// (*Client).CheckHealth.
type HealthFunc func(ctx context.Context) Health

// Supervisor owns the single renderer subprocess of this server instance. The
// handle is written only by the startup/shutdown sequence; request handlers
// only ever read the state.
type Supervisor struct {
	spawn  Spawner
	health HealthFunc

	startupWait  time.Duration
	pollInterval time.Duration

	mu    sync.Mutex
	state State
	proc  Process
}

// NewSupervisor builds a supervisor that spawns command (argv form) and probes
// health through client.
func NewSupervisor(client *Client, command []string) *Supervisor {
	return &Supervisor{
		spawn:        commandSpawner(command),
		health:       client.CheckHealth,
		startupWait:  StartupWait,
		pollInterval: PollInterval,
		state:        StateNotStarted,
	}
}

// NewSupervisorWithDeps builds a supervisor with injected spawner and health
// checker, used by tests for deterministic lifecycles.
func NewSupervisorWithDeps(spawn Spawner, health HealthFunc, startupWait, pollInterval time.Duration) *Supervisor {
	return &Supervisor{
		spawn:        spawn,
		health:       health,
		startupWait:  startupWait,
		pollInterval: pollInterval,
		state:        StateNotStarted,
	}
}

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ensure makes sure a renderer is reachable: if one already answers health
// checks nothing is spawned; otherwise the command is started and health is
// polled until ready or the startup deadline passes. Safe to call again after
// a failure.
func (s *Supervisor) Ensure(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateReady || s.state == StateStarting {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStarting
	s.mu.Unlock()

	// Something may already be listening (external deploy, docker compose).
	if h := s.health(ctx); h.OK() {
		log.Printf("[pdf-service] renderer already available")
		s.setState(StateReady)
		return nil
	}

	proc, err := s.spawn()
	if err != nil {
		s.setState(StateFailed)
		return fmt.Errorf("failed to start renderer: %w", err)
	}

	s.mu.Lock()
	s.proc = proc
	s.mu.Unlock()

	// Reset the running flag when the child exits for any reason.
	go func() {
		err := proc.Wait()
		if err != nil {
			log.Printf("[pdf-service] renderer exited: %v", err)
		} else {
			log.Printf("[pdf-service] renderer exited")
		}
		s.mu.Lock()
		if s.proc == proc {
			s.proc = nil
			s.state = StateNotStarted
		}
		s.mu.Unlock()
	}()

	deadline := time.Now().Add(s.startupWait)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			s.setState(StateFailed)
			return fmt.Errorf("renderer startup cancelled: %w", ctx.Err())
		case <-time.After(s.pollInterval):
		}

		if h := s.health(ctx); h.OK() {
			log.Printf("[pdf-service] renderer ready")
			s.setState(StateReady)
			return nil
		}
	}

	s.setState(StateFailed)
	return &StartupError{Wait: s.startupWait.String()}
}

// Shutdown sends a terminate request to the child if still alive. Best-effort:
// the exit is not awaited.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	proc := s.proc
	s.mu.Unlock()

	if proc == nil {
		return
	}
	log.Printf("[pdf-service] stopping renderer")
	if err := proc.Terminate(); err != nil {
		log.Printf("[pdf-service] terminate failed: %v", err)
	}
}

func (s *Supervisor) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// execProcess adapts exec.Cmd to the Process interface.
type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() error { return p.cmd.Wait() }

func (p *execProcess) Terminate() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Signal(syscall.SIGTERM)
}

func commandSpawner(command []string) Spawner {
	return func() (Process, error) {
		if len(command) == 0 {
			return nil, fmt.Errorf("renderer command is empty")
		}
		cmd := exec.Command(command[0], command[1:]...)
		log.Printf("[pdf-service] starting renderer: %v", command)
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return &execProcess{cmd: cmd}, nil
	}
}

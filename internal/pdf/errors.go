// Package pdf supervises the external render service: it spawns and
// health-checks the renderer process and proxies render requests, classifying
// connectivity failures distinctly from application failures.
package pdf

import "fmt"

// OfflineError means a connection to the render service could not be
// established at all.
type OfflineError struct {
	URL   string
	Cause error
}

func (e *OfflineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render service unreachable at %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("render service unreachable at %s", e.URL)
}

func (e *OfflineError) Unwrap() error {
	return e.Cause
}

// TimeoutError means the render service did not answer before the deadline.
type TimeoutError struct {
	URL   string
	Cause error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render service timed out at %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("render service timed out at %s", e.URL)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// RenderError means the service answered with a non-2xx status. Body carries
// the (truncated) response so the failure reason survives to the caller.
type RenderError struct {
	StatusCode int
	Body       string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render service error %d: %s", e.StatusCode, e.Body)
}

// StartupError means the supervised renderer process did not become healthy
// within the startup deadline.
type StartupError struct {
	Wait  string
	Cause error
}

func (e *StartupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("renderer did not become healthy within %s: %v", e.Wait, e.Cause)
	}
	return fmt.Sprintf("renderer did not become healthy within %s", e.Wait)
}

func (e *StartupError) Unwrap() error {
	return e.Cause
}

package followup

import "context"

// Run is a handle to a background triage batch. Unlike a fire-and-forget
// goroutine, completion and the aggregated result stay observable.
type Run struct {
	done chan struct{}
	out  ProcessOutput
	err  error
}

// StartRun executes fn in the background and returns its handle.
func StartRun(fn func() (ProcessOutput, error)) *Run {
	r := &Run{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.out, r.err = fn()
	}()
	return r
}

// Done is closed when the batch has finished.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the batch finishes or ctx is cancelled.
func (r *Run) Wait(ctx context.Context) (ProcessOutput, error) {
	select {
	case <-ctx.Done():
		return ProcessOutput{}, ctx.Err()
	case <-r.done:
		return r.out, r.err
	}
}

// Finished reports whether the batch has completed without blocking.
func (r *Run) Finished() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

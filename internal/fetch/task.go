// Package fetch runs backend calls as cancellable tasks whose results are
// dropped once their owner has gone away.
package fetch

import (
	"context"
	"sync"
)

// Task is a single in-flight fetch.
type Task[T any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	once sync.Once
	val  T
	err  error
}

// Start runs fn on its own goroutine under a child of parent.
func Start[T any](parent context.Context, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(parent)
	t := &Task[T]{ctx: ctx, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.val, t.err = fn(ctx)
	}()
	return t
}

// Cancel abandons the task. It is safe to call more than once.
func (t *Task[T]) Cancel() {
	t.once.Do(t.cancel)
}

// Alive reports whether the owner still wants the result.
func (t *Task[T]) Alive() bool {
	return t.ctx.Err() == nil
}

// Wait blocks until fn returns or the task is cancelled. A result that
// arrives after cancellation is discarded and the context error returned.
func (t *Task[T]) Wait() (T, error) {
	var zero T
	select {
	case <-t.done:
	case <-t.ctx.Done():
		return zero, t.ctx.Err()
	}
	if !t.Alive() {
		return zero, t.ctx.Err()
	}
	if t.err != nil {
		return zero, t.err
	}
	return t.val, nil
}

// Then waits for the task and, only if it is still alive, applies fn to the
// result. The task is released afterwards.
func Then[T, U any](t *Task[T], fn func(T) U) (U, error) {
	defer t.Cancel()
	var zero U
	v, err := t.Wait()
	if err != nil {
		return zero, err
	}
	if !t.Alive() {
		return zero, t.ctx.Err()
	}
	return fn(v), nil
}

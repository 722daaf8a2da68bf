package service

import (
	"sync"

	"partyplanner-backend/internal/logger"
)

// Dispatcher runs notification tasks off the request path. Callers
// never wait on a task; failures are logged and dropped.
type Dispatcher struct {
	wg sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Go submits a fire-and-forget task.
func (d *Dispatcher) Go(task string, fn func() error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Notification task panicked", "task", task, "panic", r)
			}
		}()
		if err := fn(); err != nil {
			logger.Error("Notification task failed", "task", task, "error", err)
		}
	}()
}

// Wait blocks until all submitted tasks have finished. Used on
// shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

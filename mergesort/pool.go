package main

import "sync"

// Worker slots for sort tasks, a counting semaphore sized to MaxWorkers.
// Holding a slot grants the right to run one task on its own goroutine.
var (
	workers     chan struct{}
	workersOnce sync.Once
)

func initWorkers() {
	workersOnce.Do(func() {
		n := MaxWorkers
		if n < 1 {
			n = 1
		}
		workers = make(chan struct{}, n)
	})
}

// spawn submits f as a concurrent task when a worker slot is free, and runs
// it inline on the submitting goroutine otherwise, so a saturated pool
// degrades to sequential recursion instead of deadlocking on its own
// children. Either way completion is observed through wg; wg.Wait is the
// join barrier.
func spawn(wg *sync.WaitGroup, f func()) {
	select {
	case workers <- struct{}{}:
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-workers }()
			f()
		}()
	default:
		f()
	}
}

package worker

import (
	"errors"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/footing/oerror"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run on the worker pool. To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Wait runs every function passed on the worker pool and blocks until all of them have returned. A
// function that panics does not stop the others: the panic is reported and returned as an error.
func Wait(fs ...func()) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	wg.Add(len(fs))
	for i, f := range fs {
		Submit(func() {
			defer wg.Done()
			defer func() {
				if v := recover(); v != nil {
					err := oerror.New("job %d panicked: %v", i, v)
					hub := sentry.CurrentHub().Clone()
					hub.ConfigureScope(func(scope *sentry.Scope) {
						scope.SetTag("worker_job", "wait")
					})
					hub.Recover(err)

					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}()
			f()
		})
	}
	wg.Wait()
	return errors.Join(errs...)
}

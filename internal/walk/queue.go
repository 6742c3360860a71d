package walk

import (
	"io/fs"
	"sync"
)

// directoryJob is a directory waiting to be read by a worker.
type directoryJob struct {
	path         string
	depth        int
	inRepository bool
	matchers     []scopedMatcher
	ancestors    []fs.FileInfo
}

// jobQueue is an unbounded work list shared by the workers. Pushing never blocks.
type jobQueue struct {
	mutex     sync.Mutex
	condition *sync.Cond
	jobs      []directoryJob
	pending   int
	closed    bool
}

func newJobQueue() *jobQueue {
	queue := &jobQueue{}
	queue.condition = sync.NewCond(&queue.mutex)
	return queue
}

// push schedules a job. Each pushed job must be matched by one call to finish.
func (queue *jobQueue) push(job directoryJob) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	if queue.closed {
		return
	}
	queue.jobs = append(queue.jobs, job)
	queue.pending++
	queue.condition.Signal()
}

// pop blocks until a job is available. It returns false once every scheduled
// job has finished or the queue has been closed.
func (queue *jobQueue) pop() (directoryJob, bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	for len(queue.jobs) == 0 && queue.pending > 0 && !queue.closed {
		queue.condition.Wait()
	}
	if queue.closed || len(queue.jobs) == 0 {
		return directoryJob{}, false
	}
	lastIndex := len(queue.jobs) - 1
	job := queue.jobs[lastIndex]
	queue.jobs = queue.jobs[:lastIndex]
	return job, true
}

// finish marks a popped job as complete.
func (queue *jobQueue) finish() {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	queue.pending--
	if queue.pending <= 0 {
		queue.condition.Broadcast()
	}
}

// close wakes every waiting worker and discards queued jobs.
func (queue *jobQueue) close() {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	queue.closed = true
	queue.jobs = nil
	queue.condition.Broadcast()
}

package asset

import (
	"context"
	"sync"
)

// LoadJob asks a worker to read one asset file.
type LoadJob struct {
	Kind Kind
	Name string
	Path string
	// Result channel - will be sent the result when done
	ResultChan chan LoadResult
}

// LoadResult carries a decoded mesh or texture, or the error that stopped it.
type LoadResult struct {
	Kind    Kind
	Name    string
	Mesh    *Mesh
	Texture *Texture
	Err     error
}

// WorkerPool decodes asset files on a fixed set of goroutines.
type WorkerPool struct {
	jobQueue chan LoadJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines sharing a queue of queueSize jobs.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		jobQueue: make(chan LoadJob, queueSize),
		workers:  max(workers, 1),
		ctx:      ctx,
		cancel:   cancel,
	}
	for range p.workers {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit queues a job, blocking while the queue is full. It returns false once
// the pool is shut down.
func (p *WorkerPool) Submit(job LoadJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			res := LoadResult{Kind: job.Kind, Name: job.Name}
			switch job.Kind {
			case KindMesh:
				res.Mesh, res.Err = LoadMesh(job.Path)
			default:
				res.Texture, res.Err = LoadTexture(job.Path)
			}

			select {
			case job.ResultChan <- res:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers; queued jobs are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the number of jobs waiting for a worker.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

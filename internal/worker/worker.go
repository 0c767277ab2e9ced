package worker

import (
	"fmt"
	"log/slog"
	"sync"
)

// Task 是背景執行的工作單位
type Task func()

// Pool 定義背景工作池
type Pool interface {
	// TrySubmit 佇列滿或已停止時回傳 false，不阻塞
	TrySubmit(Task) bool
	// Stop 等待已排入的工作全部完成
	Stop()
}

// NewPool 建立 n 個 worker，queueSize 為佇列長度。n<=0 時預設為 1。
func NewPool(n, queueSize int, logger *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &pool{jobs: make(chan Task, queueSize), logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	logger *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "panic", fmt.Sprint(r))
		}
	}()
	job()
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

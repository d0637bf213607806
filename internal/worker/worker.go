package worker

import "sync"

// Task 代表交給 pool 執行的一個工作單位
type Task func()

// Pool 提供固定數量 worker 的簡單派工池
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool 建立有 n 個 worker 的 pool，n <= 0 時視為 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// Submit 送出工作；Stop 之後不得再呼叫
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop 關閉佇列並等待所有 worker 完成
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

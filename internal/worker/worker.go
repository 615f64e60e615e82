package worker

import "sync"

// Job 代表一件交給池子執行的背景工作（例如資料庫 seeding）
type Job func()

// Pool 簡單的固定大小 worker pool
type Pool interface {
	Submit(Job)
	Stop()
}

type pool struct {
	jobs chan Job
	wg   sync.WaitGroup
}

// NewPool 建立 n 個 worker 的池子，n <= 0 時視為 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job)}
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

func (p *pool) Submit(j Job) {
	p.jobs <- j
}

// Stop 關閉佇列並等所有進行中的工作結束
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

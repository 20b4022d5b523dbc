package guardedvsatomic

import (
	"sync"
	"sync/atomic"
)

// atomicCounter 用原子操作代替互斥锁，同样满足worker.Incrementer
type atomicCounter struct {
	val atomic.Int64
}

func (c *atomicCounter) Increment()   { c.val.Add(1) }
func (c *atomicCounter) Value() int64 { return c.val.Load() }

// narrowCounter 不用defer，临界区只包住读-改-写
type narrowCounter struct {
	mu  sync.Mutex
	val int64
}

func (c *narrowCounter) Increment() {
	c.mu.Lock()
	c.val++
	c.mu.Unlock()
}

func (c *narrowCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

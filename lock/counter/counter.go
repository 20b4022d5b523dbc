package counter

import "sync"

// Counter 由互斥锁保护的共享计数器
// 整数和保护它的锁放在同一个结构体里，以指针的形式交给各个worker，不依赖包级全局变量
type Counter struct {
	mu    sync.Mutex
	val   int64
	probe *Probe
}

// Option 是函数选项类型，用于设置Counter的属性
type Option func(*Counter)

// WithProbe 在临界区内登记持锁者，用于观测同一时刻持锁的worker数量
func WithProbe(p *Probe) Option {
	return func(c *Counter) {
		c.probe = p
	}
}

// New 创建一个初始值为0的计数器
func New(opts ...Option) *Counter {
	c := &Counter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Increment 加锁 -> 读取 -> 加1 -> 写回 -> 解锁
// 解锁放在defer里，任何退出路径都会释放锁
func (c *Counter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.probe != nil {
		c.probe.Enter()
		defer c.probe.Leave()
	}

	v := c.val
	v++
	c.val = v
}

// Value 在锁内读取当前值
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

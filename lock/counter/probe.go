package counter

import "sync/atomic"

// Probe 统计临界区的并发持有者
//
// Enter/Leave 必须成对出现在临界区的入口和出口。
// 对于正确加锁的计数器，Peak 永远不会超过1，Violations 永远为0。
type Probe struct {
	holders    atomic.Int32
	peak       atomic.Int32
	entries    atomic.Int64
	violations atomic.Int64
}

func NewProbe() *Probe {
	return &Probe{}
}

// Enter 登记一个进入临界区的持有者
func (p *Probe) Enter() {
	n := p.holders.Add(1)
	p.entries.Add(1)
	if n > 1 {
		p.violations.Add(1)
	}
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			return
		}
	}
}

// Leave 登记一个离开临界区的持有者
func (p *Probe) Leave() {
	p.holders.Add(-1)
}

// Peak 观测到的最大同时持有者数量
func (p *Probe) Peak() int32 {
	return p.peak.Load()
}

// Holders 当前持有者数量
func (p *Probe) Holders() int32 {
	return p.holders.Load()
}

func (p *Probe) Entries() int64 {
	return p.entries.Load()
}

// Violations 进入时发现已有其他持有者的次数
func (p *Probe) Violations() int64 {
	return p.violations.Load()
}

package unguardedcounter

import (
	"runtime"

	"guarded-counter/lock/counter"
)

/*
去掉互斥锁之后的计数器，仅用于对照实验。

读取和写回之间主动让出调度，另一个worker可以在这个窗口里读到同一个旧值，
两次自增最终只写回一次，也就是丢失更新。用 go test -race 运行会报 DATA RACE。
*/

// Unguarded 没有锁保护的计数器
type Unguarded struct {
	val   int64
	probe *counter.Probe
}

// New probe可以为nil
func New(probe *counter.Probe) *Unguarded {
	return &Unguarded{probe: probe}
}

func (u *Unguarded) Increment() {
	if u.probe != nil {
		u.probe.Enter()
		defer u.probe.Leave()
	}

	v := u.val
	runtime.Gosched()
	u.val = v + 1
}

// Value 只能在所有worker结束之后调用
func (u *Unguarded) Value() int64 {
	return u.val
}

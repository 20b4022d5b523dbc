package counter

import (
	"sync"
	"testing"
	"time"
)

// runWorkers 启动n个goroutine，每个调用k次Increment，全部结束后返回
func runWorkers(c *Counter, n, k int) {
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range k {
				c.Increment()
			}
		}()
	}
	wg.Wait()
}

func assertValue(t *testing.T, got, want int64) {
	t.Helper()
	if got != want {
		t.Fatalf("counter = %d, want %d", got, want)
	}
}

func TestNewStartsAtZero(t *testing.T) {
	assertValue(t, New().Value(), 0)
}

func TestIncrementSingleGoroutine(t *testing.T) {
	c := New()
	for range 10 {
		c.Increment()
	}
	assertValue(t, c.Value(), 10)
}

// TestTwoWorkers 两个worker各加100000次，结果必须恰好是200000
func TestTwoWorkers(t *testing.T) {
	for i := range 5 {
		c := New()
		runWorkers(c, 2, 100000)
		if got := c.Value(); got != 200000 {
			t.Fatalf("run %d: counter = %d, want 200000", i, got)
		}
	}
}

func TestWorkersTimesIncrements(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		incs    int
	}{
		{"single worker", 1, 1000},
		{"four workers", 4, 1000},
		{"eight workers", 8, 5000},
		{"no increments", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			runWorkers(c, tt.workers, tt.incs)
			assertValue(t, c.Value(), int64(tt.workers*tt.incs))
		})
	}
}

// TestProbeNeverSeesTwoHolders 锁保护下同时持锁的worker数量不超过1
func TestProbeNeverSeesTwoHolders(t *testing.T) {
	p := NewProbe()
	c := New(WithProbe(p))
	runWorkers(c, 2, 100000)

	assertValue(t, c.Value(), 200000)
	if p.Peak() != 1 {
		t.Errorf("peak holders = %d, want 1", p.Peak())
	}
	if p.Violations() != 0 {
		t.Errorf("violations = %d, want 0", p.Violations())
	}
	if p.Entries() != 200000 {
		t.Errorf("entries = %d, want 200000", p.Entries())
	}
	if p.Holders() != 0 {
		t.Errorf("holders after join = %d, want 0", p.Holders())
	}
}

// TestProbeDetectsOverlap 直接模拟两个持有者重叠，确认探针能发现违规
func TestProbeDetectsOverlap(t *testing.T) {
	p := NewProbe()
	p.Enter()
	p.Enter()
	p.Leave()
	p.Leave()

	if p.Peak() != 2 {
		t.Errorf("peak = %d, want 2", p.Peak())
	}
	if p.Violations() != 1 {
		t.Errorf("violations = %d, want 1", p.Violations())
	}
	if p.Holders() != 0 {
		t.Errorf("holders = %d, want 0", p.Holders())
	}
}

// TestIncrementReleasesLock 每次Increment之后锁都已释放，所有worker都能在期限内结束
func TestIncrementReleasesLock(t *testing.T) {
	c := New()
	done := make(chan struct{})
	go func() {
		runWorkers(c, 2, 100000)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("workers did not finish, lock never released?")
	}

	if !c.mu.TryLock() {
		t.Fatal("lock still held after all workers returned")
	}
	c.mu.Unlock()
}

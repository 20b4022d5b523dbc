package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/timex"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidArgument worker数量或自增次数不合法
var ErrInvalidArgument = errors.New("worker: invalid argument")

// Incrementer 被worker反复调用的自增操作
type Incrementer interface {
	Increment()
}

// Stats 一次运行的统计
type Stats struct {
	Workers    int
	Increments int // 每个worker的自增次数
	Expected   int64
	Elapsed    time.Duration
}

// Run 启动workers个goroutine，每个对inc调用increments次Increment，等待全部结束后返回
//
// 没有取消和超时：worker一旦启动就会跑完，ctx只用于携带日志字段。
// Wait返回即构成同步点，调用方之后读取计数器不会与worker产生数据竞争。
// inc必须可用：nil接口或装着nil指针的接口都会在worker里panic，这里不做检查。
func Run(ctx context.Context, inc Incrementer, workers, increments int) (Stats, error) {
	if workers < 1 {
		return Stats{}, fmt.Errorf("%w: workers = %d, want >= 1", ErrInvalidArgument, workers)
	}
	if increments < 0 {
		return Stats{}, fmt.Errorf("%w: increments = %d, want >= 0", ErrInvalidArgument, increments)
	}

	start := timex.Now()
	var g errgroup.Group
	for id := range workers {
		g.Go(func() error {
			logger := logx.WithContext(logx.ContextWithFields(ctx, logx.Field("worker", id)))
			logger.Debugw("worker started", logx.Field("increments", increments))
			for range increments {
				inc.Increment()
			}
			logger.Debugw("worker finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Workers:    workers,
		Increments: increments,
		Expected:   int64(workers) * int64(increments),
		Elapsed:    timex.Since(start),
	}, nil
}

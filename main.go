package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jxskiss/mcli"
	"github.com/zeromicro/go-zero/core/logx"

	"guarded-counter/config"
	"guarded-counter/lock/counter"
	"guarded-counter/report"
	"guarded-counter/worker"
)

func main() {
	os.Exit(execute())
}

// execute 返回进程退出码，由main调用os.Exit
func execute() int {
	var args Args
	if _, err := mcli.Parse(&args); err != nil {
		fmt.Fprintf(os.Stderr, "parse arguments: %v\n", err)
		return 2
	}

	cfg, err := config.Load(args.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	args.apply(&cfg)

	setupLogging(cfg.Log)
	defer cleanup()

	if cfg.Diagnostics {
		if err := startDiagnostics(); err != nil {
			logx.Error(err)
			return 1
		}
	}
	go handleTermination(notifyTermination(), os.Exit)

	if err := run(context.Background(), os.Stdout, cfg); err != nil {
		logx.Errorf("guarded-counter: %v", err)
		return 1
	}
	return 0
}

// setupLogging 日志统一写到stderr，stdout只留给结果行
func setupLogging(c logx.LogConf) {
	c = consoleLogConf(c)
	logx.MustSetup(c)
	if c.Mode == "console" {
		logx.SetWriter(logx.NewWriter(os.Stderr))
	}
}

// consoleLogConf 关闭stat日志，console模式下使用plain编码
// file/volume模式保留配置里的编码
func consoleLogConf(c logx.LogConf) logx.LogConf {
	c.Stat = false
	if c.Mode == "console" && (c.Encoding == "" || c.Encoding == "json") {
		c.Encoding = "plain"
	}
	return c
}

func run(ctx context.Context, out io.Writer, cfg config.Config) error {
	probe := counter.NewProbe()
	c := counter.New(counter.WithProbe(probe))

	stats, err := worker.Run(ctx, c, cfg.Workers, cfg.Increments)
	if err != nil {
		return fmt.Errorf("run workers: %w", err)
	}

	// worker全部join之后再读，不会与自增竞争
	final := c.Value()
	summary := report.Build(stats, final, probe)

	logger := logx.WithContext(ctx).WithDuration(stats.Elapsed)
	fields := []logx.LogField{
		logx.Field("workers", summary.Workers),
		logx.Field("expected", summary.Expected),
		logx.Field("final", summary.Final),
		logx.Field("peakHolders", summary.PeakHolders),
	}
	if summary.Consistent {
		logger.Infow("counter settled", fields...)
	} else {
		logger.Errorw("counter inconsistent", fields...)
	}

	if err := report.Print(out, final); err != nil {
		return fmt.Errorf("print result: %w", err)
	}
	if cfg.Report != "" {
		if err := report.WriteJSON(cfg.Report, summary); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"guarded-counter/lock/counter"
	"guarded-counter/worker"
)

// Line 标准输出上唯一的一行结果
func Line(value int64) string {
	return fmt.Sprintf("Final counter value: %d", value)
}

func Print(w io.Writer, value int64) error {
	_, err := fmt.Fprintln(w, Line(value))
	return err
}

// Summary 一次运行的机器可读摘要
type Summary struct {
	Workers       int   `json:"workers"`
	Increments    int   `json:"increments_per_worker"`
	Expected      int64 `json:"expected"`
	Final         int64 `json:"final"`
	PeakHolders   int32 `json:"peak_holders"`
	Violations    int64 `json:"violations"`
	ElapsedMillis int64 `json:"elapsed_ms"`
	Consistent    bool  `json:"consistent"`
}

// Build 汇总worker统计、最终值和探针数据，probe可以为nil
func Build(stats worker.Stats, final int64, probe *counter.Probe) Summary {
	s := Summary{
		Workers:       stats.Workers,
		Increments:    stats.Increments,
		Expected:      stats.Expected,
		Final:         final,
		ElapsedMillis: stats.Elapsed.Milliseconds(),
	}
	if probe != nil {
		s.PeakHolders = probe.Peak()
		s.Violations = probe.Violations()
	}
	s.Consistent = s.Final == s.Expected && s.Violations == 0
	return s
}

// WriteJSON 把摘要写入path
func WriteJSON(path string, s Summary) error {
	data, err := sonic.ConfigStd.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"
)

func startDiagnostics() error {
	if err := agent.Listen(agent.Options{}); err != nil {
		return fmt.Errorf("start gops agent: %w", err)
	}
	logx.Info("gops agent listening")
	return nil
}

// notifyTermination 订阅SIGINT和SIGTERM
func notifyTermination() <-chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	return c
}

// handleTermination 收到信号后关闭gops agent、刷新日志，再以退出码1调用exit
func handleTermination(sigs <-chan os.Signal, exit func(int)) {
	sig, ok := <-sigs
	if !ok {
		return
	}
	logx.Infow("received signal, cleaning up", logx.Field("signal", sig.String()))
	cleanup()
	exit(1)
}

func cleanup() {
	agent.Close()
	_ = logx.Close()
}

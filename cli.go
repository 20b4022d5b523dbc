package main

import "guarded-counter/config"

type Args struct {
	ConfigFile  string `cli:"-f, --config, Config file (yaml/json/toml). Defaults to 2 workers x 100000 increments."`
	Report      string `cli:"-r, --report, Write a JSON run summary to this path"`
	Diagnostics bool   `cli:"-g, --gops, Start the gops diagnostics agent"`
}

// apply 命令行参数覆盖配置文件
func (a *Args) apply(c *config.Config) {
	if a.Report != "" {
		c.Report = a.Report
	}
	if a.Diagnostics {
		c.Diagnostics = true
	}
}

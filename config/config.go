package config

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// ErrInvalidConfig 配置值超出允许范围
var ErrInvalidConfig = errors.New("config: invalid value")

// Config 运行参数，不提供配置文件时等价于2个worker各自增100000次
type Config struct {
	Workers     int    `json:",default=2"`
	Increments  int    `json:",default=100000"`
	Report      string `json:",optional"` // JSON运行摘要的输出路径，为空则不写
	Diagnostics bool   `json:",default=false"`
	Log         logx.LogConf
}

// Default 返回全部字段取默认值的配置
func Default() (Config, error) {
	var c Config
	if err := conf.FillDefault(&c); err != nil {
		return Config{}, fmt.Errorf("fill default config: %w", err)
	}
	return c, nil
}

// Load 从yaml/json/toml文件加载配置，path为空时使用默认值
func Load(path string) (Config, error) {
	if path == "" {
		c, err := Default()
		if err != nil {
			return Config{}, err
		}
		return c, c.Validate()
	}

	var c Config
	if err := conf.Load(path, &c); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: Workers = %d, want >= 1", ErrInvalidConfig, c.Workers))
	}
	if c.Increments < 0 {
		errs = append(errs, fmt.Errorf("%w: Increments = %d, want >= 0", ErrInvalidConfig, c.Increments))
	}
	return errors.Join(errs...)
}

// Expected 所有worker结束后计数器应有的值
func (c Config) Expected() int64 {
	return int64(c.Workers) * int64(c.Increments)
}

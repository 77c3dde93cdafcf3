package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Storage *Storage `json:"storage" yaml:"storage"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if yaml.Unmarshal(content, &conf) != nil {
		panic(fmt.Sprintf("解析 config.yaml 读取错误: %v", err))
	}
	conf.fill()

	return &conf
}

// Default 内嵌使用时的默认配置
func Default() *Config {
	c := &Config{}
	c.fill()
	return c
}

func (c *Config) fill() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Storage == nil {
		c.Storage = &Storage{}
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "data/minimart.json"
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

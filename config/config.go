/*
Package config 配置管理包

项目结构说明：
================

/
├── main.go              # 程序入口（cobra 命令）
├── config/              # 配置相关
│   ├── config.go        # 应用配置（默认值 -> YAML文件 -> 环境变量）
│   └── database.go      # SQLite 连接和迁移
├── server/              # HTTP服务器
├── routes/              # 路由配置
├── handles/             # 请求处理
├── services/            # 目录读取、合并视图、标签提交
├── store/               # 用户标签账本（sqlite / badger / memory）
├── models/              # 数据模型
├── middleware/          # 中间件（请求ID、日志、CORS、指标）
├── metrics/             # Prometheus 指标
├── logging/             # zerolog 日志
└── utils/               # 响应格式、YouTube ID、旧数据导入

数据流向：
1. main.go -> 加载配置 -> 打开账本 -> 启动server
2. server -> 注册routes -> handles处理请求
3. handles -> services -> 目录文件 + store（账本）

运行方式：
1. 服务器模式: ./wildcam serve --config wildcam.yaml
2. 检查目录:   ./wildcam catalog check
3. 查看账本:   ./wildcam tags list
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// 账本驱动
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverMemory = "memory"
)

// ConfigPathEnvVar 配置文件路径的环境变量
const ConfigPathEnvVar = "WILDCAM_CONFIG"

// DefaultConfigFile 工作目录下的默认配置文件
const DefaultConfigFile = "wildcam.yaml"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Catalog CatalogConfig `koanf:"catalog"`
	Ledger  LedgerConfig  `koanf:"ledger"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Port      string `koanf:"port"`
	StaticDir string `koanf:"static_dir"` // 前端静态文件目录，不存在则不挂载
	GinMode   string `koanf:"gin_mode"`   // release / debug / test
}

type CatalogConfig struct {
	Path string `koanf:"path"`
}

type LedgerConfig struct {
	Driver    string `koanf:"driver"`
	DBPath    string `koanf:"db_path"`
	BadgerDir string `koanf:"badger_dir"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8000",
			StaticDir: "public",
			GinMode:   "release",
		},
		Catalog: CatalogConfig{Path: "videos.json"},
		Ledger: LedgerConfig{
			Driver:    DriverSQLite,
			DBPath:    "wildcam.db",
			BadgerDir: "wildcam-badger",
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// 环境变量 -> 配置路径
var envMappings = map[string]string{
	"port":          "server.port",
	"static_dir":    "server.static_dir",
	"gin_mode":      "server.gin_mode",
	"catalog_path":  "catalog.path",
	"ledger_driver": "ledger.driver",
	"db_path":       "ledger.db_path",
	"badger_dir":    "ledger.badger_dir",
	"log_level":     "log.level",
	"log_format":    "log.format",
}

func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Load 加载配置：默认值 -> YAML文件（可选）-> 环境变量
// path 为空时依次查找 WILDCAM_CONFIG 和 wildcam.yaml
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("加载默认配置失败: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("加载配置文件 %s 失败: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("加载环境变量失败: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port 不能为空")
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path 不能为空")
	}

	switch c.Ledger.Driver {
	case DriverSQLite:
		if c.Ledger.DBPath == "" {
			return fmt.Errorf("ledger.db_path 不能为空")
		}
	case DriverBadger:
		if c.Ledger.BadgerDir == "" {
			return fmt.Errorf("ledger.badger_dir 不能为空")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("未知的账本驱动: %q", c.Ledger.Driver)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("未知的日志格式: %q", c.Log.Format)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Import ImportConfig `toml:"import"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ImportConfig 导入流程配置
type ImportConfig struct {
	HeaderRow         int `toml:"header_row"`          // 模板表头所在行
	DataStartRow      int `toml:"data_start_row"`      // 数据起始行
	MaxRows           int `toml:"max_rows"`            // 单文件最大数据行数
	MaxEmptyRows      int `toml:"max_empty_rows"`      // 连续空行停止阈值
	BatchSize         int `toml:"batch_size"`          // 提交批大小
	SessionTTLMinutes int `toml:"session_ttl_minutes"` // 会话过期时间
}

// SessionTTL 会话过期时间，未配置时取 30 分钟
func (c ImportConfig) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20815,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Import: ImportConfig{
			HeaderRow:         10,
			DataStartRow:      11,
			MaxRows:           1000,
			MaxEmptyRows:      5,
			BatchSize:         100,
			SessionTTLMinutes: 30,
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录下的 config.toml 加载配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("OPTICAT_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, nil
}

// EnsureDataDir 确保数据目录及子目录存在，返回绝对路径
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "templates"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

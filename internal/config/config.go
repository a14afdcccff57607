// internal/config/config.go
//
// 讀取 YAML 設定檔並套用環境變數覆寫。
// 路徑為空時只使用預設值；指定的檔案不存在或格式錯誤則視為啟動錯誤。

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PathEnv 為設定檔路徑的環境變數，--config 未指定時使用。
const PathEnv = "BOOKSTORE_CONFIG"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	Banner    string `yaml:"banner"` // 空白時使用 console.DefaultBanner
}

// Default 回傳預設設定。
func Default() FileConfig {
	return FileConfig{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads config from path, then applies BOOKSTORE_* overrides.
func Load(path string) (FileConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if v := os.Getenv("BOOKSTORE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BOOKSTORE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("BOOKSTORE_BANNER"); v != "" {
		cfg.Banner = v
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: logFormat must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}

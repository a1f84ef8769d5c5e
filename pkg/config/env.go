package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量名
const (
	EnvWindowWidth  = "LANDING_WINDOW_WIDTH"
	EnvWindowHeight = "LANDING_WINDOW_HEIGHT"
	EnvTitle        = "LANDING_TITLE"
)

// LoadEnvFile 加载 .env 文件到进程环境变量
// 文件不存在不算错误；已存在的环境变量不会被覆盖
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	log.Printf("[Config] 加载环境变量文件: %s", path)
	return nil
}

// ApplyEnvOverrides 用环境变量覆盖主页配置中的窗口参数
func ApplyEnvOverrides(cfg *LandingConfig) error {
	if v := os.Getenv(EnvWindowWidth); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvWindowWidth, v)
		}
		cfg.Window.Width = width
	}
	if v := os.Getenv(EnvWindowHeight); v != "" {
		height, err := strconv.Atoi(v)
		if err != nil || height <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvWindowHeight, v)
		}
		cfg.Window.Height = height
	}
	if v := os.Getenv(EnvTitle); v != "" {
		cfg.Window.Title = v
	}
	return nil
}

package config

import (
	"fmt"
	"os"

	"github.com/athakkar/portfolio/pkg/embedded"
)

// readConfigFile 读取配置文件内容
//
// 优先从嵌入资源读取（embedded 已初始化且文件存在时）。
// 嵌入集合只包含 data/ 下的默认配置，因此 data/ 路径总是读到编译时的版本；
// 本地文件系统只服务嵌入集合之外的路径，例如 --config-dir 指定的目录。
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return data, nil
}

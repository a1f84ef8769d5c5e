package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor 解析 "#rrggbb" 格式的颜色字符串
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

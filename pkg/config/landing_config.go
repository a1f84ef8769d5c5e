package config

import (
	"fmt"
	"image"

	"gopkg.in/yaml.v3"
)

// 默认窗口尺寸
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// 动画容器锚点
const (
	AnchorTopLeft     = "top-left"
	AnchorTopRight    = "top-right"
	AnchorBottomLeft  = "bottom-left"
	AnchorBottomRight = "bottom-right"
)

// LandingConfig 个人主页配置
//
// 配置文件位置: data/landing.yaml
type LandingConfig struct {
	Window     WindowConfig       `yaml:"window"`
	Background string             `yaml:"background"`
	Label      LabelConfig        `yaml:"label"`
	Figure     FigureLayoutConfig `yaml:"figure"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// LabelConfig 标题文字配置
// X/Y 为文字左上角相对窗口尺寸的比例
type LabelConfig struct {
	Text  string  `yaml:"text"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// FigureLayoutConfig 动画容器在窗口中的位置
type FigureLayoutConfig struct {
	Anchor      string  `yaml:"anchor"`
	WidthRatio  float64 `yaml:"widthRatio"`
	HeightRatio float64 `yaml:"heightRatio"`
}

// LoadLandingConfig 加载个人主页配置
func LoadLandingConfig(path string) (*LandingConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLandingConfig(data)
}

// ParseLandingConfig 解析 YAML 数据并验证
func ParseLandingConfig(data []byte) (*LandingConfig, error) {
	cfg := DefaultLandingConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse landing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid landing config: %w", err)
	}
	return cfg, nil
}

// DefaultLandingConfig 返回默认主页配置
func DefaultLandingConfig() *LandingConfig {
	return &LandingConfig{
		Window: WindowConfig{
			Width:     DefaultWindowWidth,
			Height:    DefaultWindowHeight,
			Title:     "Aakash Thakkar",
			Resizable: true,
		},
		Background: "#ffffff",
		Label: LabelConfig{
			Text:  "Aakash Thakkar",
			Size:  36,
			Color: "#000000",
			X:     0.04,
			Y:     0.06,
		},
		Figure: FigureLayoutConfig{
			Anchor:      AnchorTopRight,
			WidthRatio:  0.47,
			HeightRatio: 0.56,
		},
	}
}

// Validate 验证配置有效性
func (c *LandingConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := ParseColor(c.Label.Color); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	if c.Label.Size <= 0 {
		return fmt.Errorf("label size must be > 0, got %.1f", c.Label.Size)
	}
	switch c.Figure.Anchor {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight:
	default:
		return fmt.Errorf("unknown figure anchor %q", c.Figure.Anchor)
	}
	if c.Figure.WidthRatio <= 0 || c.Figure.WidthRatio > 1 {
		return fmt.Errorf("figure widthRatio must be in (0, 1], got %.2f", c.Figure.WidthRatio)
	}
	if c.Figure.HeightRatio <= 0 || c.Figure.HeightRatio > 1 {
		return fmt.Errorf("figure heightRatio must be in (0, 1], got %.2f", c.Figure.HeightRatio)
	}
	return nil
}

// Bounds 根据窗口尺寸计算动画容器的像素矩形
//
// 参数：
//   - windowWidth, windowHeight: 当前窗口（外部）尺寸
//
// 返回：
//   - image.Rectangle: 容器矩形；窗口尺寸为 0 时返回空矩形
func (f FigureLayoutConfig) Bounds(windowWidth, windowHeight int) image.Rectangle {
	if windowWidth <= 0 || windowHeight <= 0 {
		return image.Rectangle{}
	}

	w := int(float64(windowWidth) * f.WidthRatio)
	h := int(float64(windowHeight) * f.HeightRatio)

	var x, y int
	switch f.Anchor {
	case AnchorTopRight:
		x = windowWidth - w
	case AnchorBottomLeft:
		y = windowHeight - h
	case AnchorBottomRight:
		x = windowWidth - w
		y = windowHeight - h
	}
	return image.Rect(x, y, x+w, y+h)
}

package scenes

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/athakkar/portfolio/pkg/cobot"
	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// LandingScene 个人主页：左上角的名字标签和右上角的机械臂动画
//
// 场景持有动画组件的挂载点（Container）。窗口尺寸变化时，
// 场景先更新挂载点矩形，动画组件随后读取新尺寸，
// 因此场景必须先于组件订阅尺寸变化。
//
// 布局按逻辑像素计算，绘制时乘以设备缩放比例。
type LandingScene struct {
	cfg *config.LandingConfig

	container *game.Container
	figure    *cobot.Figure
	resize    *game.ResizeSignal
	layoutSub *game.Subscription

	background colorful.Color
	labelColor colorful.Color
	labelFace  *text.GoTextFace
	drawFace   *text.GoTextFace

	width, height int
	scale         float64
	disposed      bool
}

// NewLandingScene 创建主页场景并挂载动画组件
//
// 参数:
//   - cfg: 主页布局配置
//   - cobotCfg: 机械臂配置
//   - frames: 帧回调调度器
//   - resize: 窗口尺寸变化通知
func NewLandingScene(cfg *config.LandingConfig, cobotCfg *config.CobotConfig, frames *game.FrameLoop, resize *game.ResizeSignal) (*LandingScene, error) {
	background, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	labelColor, err := config.ParseColor(cfg.Label.Color)
	if err != nil {
		return nil, fmt.Errorf("label color: %w", err)
	}
	face, err := loadBoldFont(cfg.Label.Size)
	if err != nil {
		return nil, fmt.Errorf("label font: %w", err)
	}

	width, height := resize.Size()
	if width <= 0 || height <= 0 {
		width, height = cfg.Window.Width, cfg.Window.Height
	}

	s := &LandingScene{
		cfg:        cfg,
		container:  game.NewContainer(cfg.Figure.Bounds(width, height)),
		figure:     cobot.NewFigure(cobotCfg),
		resize:     resize,
		background: background,
		labelColor: labelColor,
		labelFace:  face,
		drawFace:   face,
		width:      width,
		height:     height,
		scale:      1,
	}
	if err := s.applyScale(resize.Scale()); err != nil {
		return nil, err
	}

	// 先于动画组件订阅，保证组件收到通知时挂载点已更新
	s.layoutSub = resize.Subscribe(s.onResize)

	if err := s.figure.Mount(s.container, frames, resize); err != nil {
		s.layoutSub.Cancel()
		return nil, fmt.Errorf("failed to mount figure: %w", err)
	}

	log.Printf("[LandingScene] 初始化完成: 窗口 %dx%d@%.2f, 动画区域 %v", width, height, s.scale, s.container.Bounds())
	return s, nil
}

func (s *LandingScene) onResize(width, height int) {
	s.width, s.height = width, height
	s.container.SetBounds(s.cfg.Figure.Bounds(width, height))
	if err := s.applyScale(s.resize.Scale()); err != nil {
		log.Printf("[LandingScene] 缩放字体失败，沿用旧字号: %v", err)
	}
}

// applyScale 缩放比例变化时按物理像素重建标签字体
func (s *LandingScene) applyScale(scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	if scale == s.scale {
		return nil
	}
	face, err := loadBoldFont(s.cfg.Label.Size * scale)
	if err != nil {
		return fmt.Errorf("label font: %w", err)
	}
	s.scale = scale
	s.drawFace = face
	return nil
}

// toScreen 逻辑坐标转换为屏幕物理像素
func (s *LandingScene) toScreen(p image.Point) image.Point {
	return image.Pt(int(math.Round(float64(p.X)*s.scale)), int(math.Round(float64(p.Y)*s.scale)))
}

// Update 动画由帧回调驱动，场景本身没有逐帧逻辑
func (s *LandingScene) Update(deltaTime float64) {}

// Draw 绘制背景、名字标签和动画
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	op := &text.DrawOptions{}
	op.GeoM.Translate(s.cfg.Label.X*float64(s.width)*s.scale, s.cfg.Label.Y*float64(s.height)*s.scale)
	op.ColorScale.ScaleWithColor(s.labelColor)
	text.Draw(screen, s.cfg.Label.Text, s.drawFace, op)

	s.figure.Draw(screen, s.toScreen(s.container.Bounds().Min))
}

// Dispose 卸载动画组件并取消尺寸订阅，可重复调用
func (s *LandingScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.layoutSub.Cancel()
	s.figure.Unmount()
	log.Printf("[LandingScene] 已释放")
}

// Container 返回动画组件的挂载点
func (s *LandingScene) Container() *game.Container {
	return s.container
}

// Figure 返回动画组件
func (s *LandingScene) Figure() *cobot.Figure {
	return s.figure
}

// Scale 返回当前设备缩放比例
func (s *LandingScene) Scale() float64 {
	return s.scale
}

// LabelBounds 返回名字标签在当前窗口中的逻辑像素矩形
func (s *LandingScene) LabelBounds() image.Rectangle {
	w, h := text.Measure(s.cfg.Label.Text, s.labelFace, s.labelFace.Size*1.2)
	x := int(s.cfg.Label.X * float64(s.width))
	y := int(s.cfg.Label.Y * float64(s.height))
	return image.Rect(x, y, x+int(w), y+int(h))
}

// Package app 提供个人主页应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math"
	"path"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/game"
	"github.com/athakkar/portfolio/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultConfigDir 默认配置目录
const DefaultConfigDir = "data"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigDir 配置文件目录，为空时使用 "data"
	ConfigDir string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	frames       *game.FrameLoop
	resize       *game.ResizeSignal
	landing      *config.LandingConfig
	verbose      bool

	// scaleFactor 返回设备缩放比例，测试中可替换
	scaleFactor func() float64
}

// NewApp 创建并初始化应用
//
// 使用嵌入资源时，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dir := cfg.ConfigDir
	if dir == "" {
		dir = DefaultConfigDir
	}

	landingCfg, err := config.LoadLandingConfig(path.Join(dir, "landing.yaml"))
	if err != nil {
		return nil, fmt.Errorf("主页配置加载失败: %w", err)
	}
	if err := config.ApplyEnvOverrides(landingCfg); err != nil {
		return nil, fmt.Errorf("环境变量无效: %w", err)
	}
	log.Printf("[Config] 加载主页配置: %s/landing.yaml", dir)

	cobotCfg, err := config.LoadCobotConfig(path.Join(dir, "cobot.yaml"))
	if err != nil {
		return nil, fmt.Errorf("机械臂配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载机械臂配置: %d 个节点, %d 个驱动", len(cobotCfg.Segments), len(cobotCfg.Motion.Drivers))

	frames := game.NewFrameLoop()
	resize := game.NewResizeSignal()
	sceneManager := game.NewSceneManager()

	landingScene, err := scenes.NewLandingScene(landingCfg, cobotCfg, frames, resize)
	if err != nil {
		return nil, fmt.Errorf("主页场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(landingScene)
	log.Printf("[App] Landing scene ready")

	return &App{
		sceneManager: sceneManager,
		frames:       frames,
		resize:       resize,
		landing:      landingCfg,
		verbose:      cfg.Verbose,
		scaleFactor:  deviceScaleFactor,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次；TPS 与显示器刷新率同步，因此每帧调用一次
func (a *App) Update() error {
	a.frames.Tick()
	a.sceneManager.Update(frameDelta())
	return nil
}

// frameDelta 按实际 TPS 计算帧间隔（秒）
// 游戏循环启动前 ActualTPS 为 0，此时按 60 TPS 计算
func frameDelta() float64 {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		return 1.0 / 60.0
	}
	return 1 / tps
}

// deviceScaleFactor 返回当前显示器的设备缩放比例
func deviceScaleFactor() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return m.DeviceScaleFactor()
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回屏幕尺寸
// 屏幕按设备像素分配（窗口尺寸乘以缩放比例），高分屏上不会被拉伸模糊；
// 订阅者收到的仍是窗口的逻辑尺寸，缩放比例通过 ResizeSignal.Scale 读取
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := a.scaleFactor()
	if scale <= 0 {
		scale = 1
	}
	a.resize.ObserveScaled(outsideWidth, outsideHeight, scale)
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}

// Close 释放当前场景
func (a *App) Close() {
	a.sceneManager.Close()
	log.Printf("[App] Closed")
}

// Window 返回窗口配置（已应用环境变量覆盖）
func (a *App) Window() config.WindowConfig {
	return a.landing.Window
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// FrameLoop 返回帧回调调度器
func (a *App) FrameLoop() *game.FrameLoop {
	return a.frames
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

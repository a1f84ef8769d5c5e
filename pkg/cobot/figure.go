package cobot

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/game"
	"github.com/athakkar/portfolio/pkg/render"
	"github.com/athakkar/portfolio/pkg/scenegraph"
	"github.com/hajimehoshi/ebiten/v2"
)

// Host 组件的挂载点，提供当前像素尺寸
type Host interface {
	Size() (width, height int)
}

// Figure 机械臂动画组件
//
// 生命周期：
//   - Mount: 创建相机、灯光、场景树和渲染表面，注册一个帧回调和一个尺寸监听
//   - 每帧: 推进角度、写入姿态、标记需要重绘
//   - Unmount: 取消注册，释放表面和场景树（幂等）
//
// 挂载点尺寸为逻辑像素。渲染表面按设备缩放比例分配物理像素，
// 相机宽高比始终取逻辑尺寸。
//
// 只在游戏循环线程中使用。
type Figure struct {
	cfg *config.CobotConfig

	host       Host
	resize     *game.ResizeSignal
	pixelRatio float64

	camera   *render.Camera
	lights   render.Lighting
	surface  *render.Surface
	renderer *render.Renderer
	root     *scenegraph.Node
	motion   *Motion

	frameSub  *game.Subscription
	resizeSub *game.Subscription

	mounted bool
	dirty   bool
}

// NewFigure 创建未挂载的组件
func NewFigure(cfg *config.CobotConfig) *Figure {
	if cfg == nil {
		cfg = config.DefaultCobotConfig()
	}
	return &Figure{cfg: cfg}
}

// Mount 挂载到宿主容器
//
// host 为 nil 时不做任何事。已挂载时先卸载旧实例再重新构建。
func (f *Figure) Mount(host Host, frames *game.FrameLoop, resize *game.ResizeSignal) error {
	if host == nil {
		log.Printf("[Figure] 挂载点为空，跳过挂载")
		return nil
	}
	if frames == nil || resize == nil {
		return fmt.Errorf("figure mount requires a frame loop and a resize signal")
	}
	if f.mounted {
		log.Printf("[Figure] 重复挂载，先释放旧实例")
		f.Unmount()
	}

	root, err := BuildArm(f.cfg)
	if err != nil {
		return fmt.Errorf("failed to build arm: %w", err)
	}
	lights, err := BuildLighting(f.cfg.Lights)
	if err != nil {
		root.Release()
		return fmt.Errorf("failed to build lighting: %w", err)
	}

	width, height := host.Size()
	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = float64(width) / float64(height)
	} else {
		log.Printf("[Figure] 挂载点尺寸为 %dx%d，等待有效尺寸", width, height)
	}

	f.host = host
	f.resize = resize
	f.pixelRatio = resize.Scale()
	f.root = root
	f.lights = lights
	f.camera = BuildCamera(f.cfg.Camera, aspect)
	f.surface = render.NewSurface(physicalSize(width, height, f.pixelRatio))
	f.renderer = render.NewRenderer()
	f.motion = NewMotion(f.cfg.Motion)
	DerivePose(f.motion.Angle(), f.cfg.Motion).Apply(f.root)

	f.frameSub = frames.Subscribe(f.onFrame)
	f.resizeSub = resize.Subscribe(func(int, int) { f.onResize() })

	f.mounted = true
	f.dirty = true
	log.Printf("[Figure] 已挂载: %dx%d@%.2f, %d 个节点", width, height, f.pixelRatio, root.Count())
	return nil
}

// Unmount 卸载组件，可重复调用
func (f *Figure) Unmount() {
	if !f.mounted {
		return
	}
	f.frameSub.Cancel()
	f.resizeSub.Cancel()
	f.frameSub, f.resizeSub = nil, nil

	f.surface.Dispose()
	f.renderer.Dispose()
	f.renderer = nil
	f.root.Release()
	f.root = nil
	f.host = nil
	f.resize = nil

	f.mounted = false
	f.dirty = false
	log.Printf("[Figure] 已卸载")
}

// onFrame 每帧推进一次角度并更新姿态
func (f *Figure) onFrame() {
	angle := f.motion.Step()
	DerivePose(angle, f.cfg.Motion).Apply(f.root)
	f.dirty = true
}

// onResize 按挂载点的新尺寸和缩放比例更新表面和投影
// 任一边为 0 时跳过，保留上一次的有效尺寸
func (f *Figure) onResize() {
	width, height := f.host.Size()
	if width <= 0 || height <= 0 {
		log.Printf("[Figure] 忽略无效尺寸 %dx%d", width, height)
		return
	}
	f.pixelRatio = f.resize.Scale()
	f.surface.Resize(physicalSize(width, height, f.pixelRatio))
	f.camera.SetViewport(width, height)
	f.dirty = true
}

// Draw 在需要时重绘渲染表面，再把表面绘制到 screen 的 at 位置
// screen 与 at 均为物理像素（逻辑坐标乘以 PixelRatio）
func (f *Figure) Draw(screen *ebiten.Image, at image.Point) {
	if !f.mounted {
		return
	}
	if f.dirty {
		f.renderer.Render(f.root, f.camera, f.lights, f.surface)
		f.dirty = false
	}
	img := f.surface.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	screen.DrawImage(img, op)
}

// PixelRatio 返回当前设备缩放比例
func (f *Figure) PixelRatio() float64 {
	return f.pixelRatio
}

// physicalSize 逻辑尺寸换算为物理像素，向上取整
func physicalSize(width, height int, ratio float64) (int, int) {
	if ratio <= 0 {
		ratio = 1
	}
	return int(math.Ceil(float64(width) * ratio)), int(math.Ceil(float64(height) * ratio))
}

// Mounted 返回是否已挂载
func (f *Figure) Mounted() bool {
	return f.mounted
}

// Camera 返回当前相机（未挂载过时为 nil）
func (f *Figure) Camera() *render.Camera {
	return f.camera
}

// Surface 返回当前渲染表面（未挂载过时为 nil）
func (f *Figure) Surface() *render.Surface {
	return f.surface
}

// Motion 返回当前角度状态（未挂载过时为 nil）
func (f *Figure) Motion() *Motion {
	return f.motion
}

// Root 返回场景根节点，未挂载时为 nil
func (f *Figure) Root() *scenegraph.Node {
	return f.root
}

package scenes

import (
	"image"
	"testing"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestLandingScene(t *testing.T, resize *game.ResizeSignal, frames *game.FrameLoop) *LandingScene {
	t.Helper()
	s, err := NewLandingScene(config.DefaultLandingConfig(), config.DefaultCobotConfig(), frames, resize)
	if err != nil {
		t.Fatalf("NewLandingScene failed: %v", err)
	}
	return s
}

func TestLandingSceneInitialLayout(t *testing.T) {
	resize := game.NewResizeSignal()
	frames := game.NewFrameLoop()
	s := newTestLandingScene(t, resize, frames)
	defer s.Dispose()

	// 尚未收到尺寸通知时使用配置中的窗口尺寸 1280x720
	want := image.Rect(679, 0, 1280, 403)
	if got := s.Container().Bounds(); got != want {
		t.Errorf("container bounds = %v, want %v", got, want)
	}

	w, h := s.Figure().Surface().Size()
	if w != 601 || h != 403 {
		t.Errorf("surface size = %dx%d, want 601x403", w, h)
	}

	if resize.Len() != 2 {
		t.Errorf("resize listeners = %d, want 2", resize.Len())
	}
	if frames.Len() != 1 {
		t.Errorf("frame callbacks = %d, want 1", frames.Len())
	}
}

func TestLandingSceneResize(t *testing.T) {
	resize := game.NewResizeSignal()
	s := newTestLandingScene(t, resize, game.NewFrameLoop())
	defer s.Dispose()

	resize.Emit(1000, 500)

	want := image.Rect(530, 0, 1000, 280)
	if got := s.Container().Bounds(); got != want {
		t.Fatalf("container bounds = %v, want %v", got, want)
	}
	w, h := s.Figure().Surface().Size()
	if w != 470 || h != 280 {
		t.Errorf("surface size = %dx%d, want 470x280", w, h)
	}
	if aspect := s.Figure().Camera().Aspect; aspect != 470.0/280.0 {
		t.Errorf("camera aspect = %v, want %v", aspect, 470.0/280.0)
	}
}

func TestLandingSceneZeroWindow(t *testing.T) {
	resize := game.NewResizeSignal()
	s := newTestLandingScene(t, resize, game.NewFrameLoop())
	defer s.Dispose()

	resize.Emit(0, 0)

	if !s.Container().Bounds().Empty() {
		t.Errorf("container should be empty for a zero window, got %v", s.Container().Bounds())
	}
	w, h := s.Figure().Surface().Size()
	if w != 601 || h != 403 {
		t.Errorf("surface size = %dx%d, want previous 601x403", w, h)
	}
}

func TestLandingSceneDispose(t *testing.T) {
	resize := game.NewResizeSignal()
	frames := game.NewFrameLoop()
	s := newTestLandingScene(t, resize, frames)

	s.Dispose()
	s.Dispose()

	if resize.Len() != 0 {
		t.Errorf("resize listeners after dispose = %d, want 0", resize.Len())
	}
	if frames.Len() != 0 {
		t.Errorf("frame callbacks after dispose = %d, want 0", frames.Len())
	}
	if s.Figure().Mounted() {
		t.Error("figure should be unmounted after dispose")
	}
}

func TestLandingSceneSwitchDisposes(t *testing.T) {
	resize := game.NewResizeSignal()
	frames := game.NewFrameLoop()
	sm := game.NewSceneManager()

	first := newTestLandingScene(t, resize, frames)
	sm.SwitchTo(first)
	second := newTestLandingScene(t, resize, frames)
	sm.SwitchTo(second)

	if first.Figure().Mounted() {
		t.Error("previous scene should be disposed on switch")
	}
	if frames.Len() != 1 {
		t.Errorf("frame callbacks = %d, want 1", frames.Len())
	}

	sm.Close()
	if resize.Len() != 0 {
		t.Errorf("resize listeners after close = %d, want 0", resize.Len())
	}
}

func TestLandingSceneLabelLeftOfFigure(t *testing.T) {
	s := newTestLandingScene(t, game.NewResizeSignal(), game.NewFrameLoop())
	defer s.Dispose()

	label := s.LabelBounds()
	if label.Dx() <= 0 {
		t.Fatalf("label should have a width, got %v", label)
	}
	if label.Overlaps(s.Container().Bounds()) {
		t.Errorf("label %v overlaps figure %v", label, s.Container().Bounds())
	}
}

func TestLandingSceneDeviceScale(t *testing.T) {
	resize := game.NewResizeSignal()
	s := newTestLandingScene(t, resize, game.NewFrameLoop())
	defer s.Dispose()

	resize.ObserveScaled(1000, 500, 2)

	// 挂载点保持逻辑像素，渲染表面按 2 倍分配
	want := image.Rect(530, 0, 1000, 280)
	if got := s.Container().Bounds(); got != want {
		t.Fatalf("container bounds = %v, want %v", got, want)
	}
	w, h := s.Figure().Surface().Size()
	if w != 940 || h != 560 {
		t.Errorf("surface size = %dx%d, want 940x560", w, h)
	}
	if aspect := s.Figure().Camera().Aspect; aspect != 470.0/280.0 {
		t.Errorf("camera aspect = %v, want %v", aspect, 470.0/280.0)
	}
	if s.Scale() != 2 {
		t.Errorf("scale = %v, want 2", s.Scale())
	}
	if got, want := s.drawFace.Size, s.cfg.Label.Size*2; got != want {
		t.Errorf("draw face size = %v, want %v", got, want)
	}
	if s.labelFace.Size != s.cfg.Label.Size {
		t.Errorf("layout face size changed to %v", s.labelFace.Size)
	}
	if got := s.toScreen(s.Container().Bounds().Min); got != image.Pt(1060, 0) {
		t.Errorf("figure origin on screen = %v, want (1060,0)", got)
	}

	resize.ObserveScaled(1000, 500, 1)
	w, h = s.Figure().Surface().Size()
	if w != 470 || h != 280 {
		t.Errorf("surface size after scale 1 = %dx%d, want 470x280", w, h)
	}
	if s.drawFace.Size != s.cfg.Label.Size {
		t.Errorf("draw face size = %v, want %v", s.drawFace.Size, s.cfg.Label.Size)
	}
}

func TestLandingSceneDraw(t *testing.T) {
	resize := game.NewResizeSignal()
	resize.ObserveScaled(640, 360, 2)
	s := newTestLandingScene(t, resize, game.NewFrameLoop())
	defer s.Dispose()

	screen := ebiten.NewImage(1280, 720)
	defer screen.Deallocate()
	s.Draw(screen)

	img := s.Figure().Surface().Image()
	if img == nil {
		t.Fatal("figure surface should be allocated after Draw")
	}
	if got, want := img.Bounds().Dx(), 2*s.Container().Bounds().Dx(); got != want {
		t.Errorf("surface width = %d, want %d", got, want)
	}
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level page (e.g., the landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，用于在场景被替换时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - SceneManager 切换到另一个场景
//   - 应用关闭
//
// Dispose 必须是幂等的。
type Disposable interface {
	Dispose()
}

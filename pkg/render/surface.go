package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface 渲染表面
//
// 一个挂载实例独占一个表面。像素图像在首次绘制时才分配，
// 尺寸变化时释放旧图像，Dispose 后不再分配。
type Surface struct {
	width, height int
	image         *ebiten.Image
	disposed      bool
}

// NewSurface 创建指定尺寸的渲染表面
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Size 返回表面像素尺寸
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Resize 调整表面尺寸
// 任一边为 0 或表面已释放时忽略并返回 false
func (s *Surface) Resize(width, height int) bool {
	if s.disposed || width <= 0 || height <= 0 {
		return false
	}
	if width == s.width && height == s.height {
		return true
	}
	s.releaseImage()
	s.width, s.height = width, height
	return true
}

// Image 返回表面图像，必要时分配
// 尺寸为 0 或已释放时返回 nil
func (s *Surface) Image() *ebiten.Image {
	if s.disposed || s.width <= 0 || s.height <= 0 {
		return nil
	}
	if s.image == nil {
		s.image = ebiten.NewImage(s.width, s.height)
	}
	return s.image
}

// Dispose 释放图像资源，可重复调用
func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	s.releaseImage()
	s.disposed = true
	log.Printf("[Surface] 释放渲染表面 %dx%d", s.width, s.height)
}

// Disposed 返回表面是否已释放
func (s *Surface) Disposed() bool {
	return s.disposed
}

func (s *Surface) releaseImage() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}

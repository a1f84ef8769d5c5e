package game

import "image"

// Container 动画组件的挂载点
//
// 保存组件在屏幕中的像素矩形。组件在挂载时和每次收到
// 尺寸变化通知时读取它的尺寸。
type Container struct {
	bounds image.Rectangle
}

// NewContainer 创建指定矩形的挂载点
func NewContainer(bounds image.Rectangle) *Container {
	return &Container{bounds: bounds}
}

// SetBounds 更新挂载点矩形
func (c *Container) SetBounds(bounds image.Rectangle) {
	c.bounds = bounds
}

// Bounds 返回挂载点矩形
func (c *Container) Bounds() image.Rectangle {
	return c.bounds
}

// Size 返回挂载点的像素宽高
func (c *Container) Size() (width, height int) {
	return c.bounds.Dx(), c.bounds.Dy()
}

// Package render 负责把场景树投影到 Ebitengine 图像上
//
// 流程分为两步：Rasterize 在 CPU 上完成投影、着色和画家排序（纯计算，可在无 GPU 环境测试），
// Renderer 再用 DrawTriangles 把结果批量绘制到渲染表面。
package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera 透视相机
//
// 相机没有旋转，始终朝 -Z 方向观察。
// 修改 FOV/Aspect/Near/Far 后需要调用 UpdateProjectionMatrix。
type Camera struct {
	FOV      float64 // 垂直视场角（度）
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3

	projection mgl64.Mat4
}

// NewPerspectiveCamera 创建透视相机并计算投影矩阵
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix 根据当前参数重新计算投影矩阵
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// SetViewport 根据像素尺寸更新宽高比和投影矩阵
//
// 高度或宽度为 0 时宽高比无意义，保持原投影不变并返回 false，
// 等到观察到非零尺寸后再更新。
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float64(width) / float64(height)
	c.UpdateProjectionMatrix()
	return true
}

// Projection 返回投影矩阵
func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// View 返回观察矩阵
func (c *Camera) View() mgl64.Mat4 {
	forward := c.Position.Add(mgl64.Vec3{0, 0, -1})
	return mgl64.LookAtV(c.Position, forward, mgl64.Vec3{0, 1, 0})
}

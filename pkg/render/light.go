package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// AmbientLight 环境光，均匀照亮所有表面
type AmbientLight struct {
	Color     colorful.Color
	Intensity float64
}

// DirectionalLight 平行光，从 Position 指向原点
type DirectionalLight struct {
	Color     colorful.Color
	Intensity float64
	Position  mgl64.Vec3
}

// Direction 返回指向光源的单位向量
func (l DirectionalLight) Direction() mgl64.Vec3 {
	return l.Position.Normalize()
}

// Lighting 场景灯光布置
type Lighting struct {
	Ambient     AmbientLight
	Directional []DirectionalLight
}

// Shade 计算法线为 normal（单位向量）的表面的漫反射颜色
// 结果各分量限制在 [0, 1]
func (l Lighting) Shade(base colorful.Color, normal mgl64.Vec3) colorful.Color {
	r := l.Ambient.Color.R * l.Ambient.Intensity
	g := l.Ambient.Color.G * l.Ambient.Intensity
	b := l.Ambient.Color.B * l.Ambient.Intensity

	for _, d := range l.Directional {
		lambert := math.Max(0, normal.Dot(d.Direction())) * d.Intensity
		r += d.Color.R * lambert
		g += d.Color.G * lambert
		b += d.Color.B * lambert
	}

	return colorful.Color{R: base.R * r, G: base.G * g, B: base.B * b}.Clamped()
}

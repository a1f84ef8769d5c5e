package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lathe 将 XY 平面上的轮廓绕 Y 轴旋转一周生成旋转体
//
// 参数：
//   - points: 轮廓点 [x, y]，x 为到 Y 轴的距离
//   - segments: 圆周分段数
func Lathe(points [][2]float64, segments int) (*Mesh, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("lathe needs at least 2 profile points, got %d", len(points))
	}
	if segments < 3 {
		return nil, fmt.Errorf("lathe segments must be >= 3, got %d", segments)
	}

	rows := segments + 1
	cols := len(points)
	if err := checkVertexCount(rows * cols); err != nil {
		return nil, err
	}

	mesh := &Mesh{
		Positions: make([]mgl64.Vec3, 0, rows*cols),
		Indices:   make([]uint16, 0, segments*(cols-1)*6),
	}

	for i := 0; i <= segments; i++ {
		phi := float64(i) / float64(segments) * 2 * math.Pi
		sin, cos := math.Sincos(phi)
		for _, p := range points {
			mesh.Positions = append(mesh.Positions, mgl64.Vec3{p[0] * sin, p[1], p[0] * cos})
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < cols-1; j++ {
			base := j + i*cols
			a := uint16(base)
			b := uint16(base + cols)
			c := uint16(base + cols + 1)
			d := uint16(base + 1)
			mesh.Indices = append(mesh.Indices, a, b, d, c, d, b)
		}
	}
	return mesh, nil
}

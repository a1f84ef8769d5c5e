// Package geometry 生成机械臂使用的三角网格
//
// 几何体的参数与顶点排列沿用常见 3D 库的约定：
// Y 轴向上，旋转体绕 Y 轴扫掠，球体的 phi 为水平角、theta 为极角。
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh 索引三角网格
type Mesh struct {
	Positions []mgl64.Vec3
	Indices   []uint16 // 每 3 个索引构成一个三角形
}

// TriangleCount 返回三角形数量
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle 返回第 i 个三角形的三个顶点
func (m *Mesh) Triangle(i int) (a, b, c mgl64.Vec3) {
	return m.Positions[m.Indices[3*i]], m.Positions[m.Indices[3*i+1]], m.Positions[m.Indices[3*i+2]]
}

// checkVertexCount 确保顶点数可以用 uint16 索引
func checkVertexCount(n int) error {
	if n > 0xFFFF {
		return fmt.Errorf("mesh has %d vertices, exceeds uint16 index range", n)
	}
	return nil
}

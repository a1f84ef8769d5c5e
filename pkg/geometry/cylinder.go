package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder 生成沿 Y 轴居中的封口圆柱（上下半径可不同）
func Cylinder(radiusTop, radiusBottom, height float64, radialSegments int) (*Mesh, error) {
	if height <= 0 {
		return nil, fmt.Errorf("cylinder height must be > 0, got %f", height)
	}
	if radialSegments < 3 {
		return nil, fmt.Errorf("cylinder radial segments must be >= 3, got %d", radialSegments)
	}
	if radiusTop < 0 || radiusBottom < 0 || (radiusTop == 0 && radiusBottom == 0) {
		return nil, fmt.Errorf("cylinder radii invalid: top=%f bottom=%f", radiusTop, radiusBottom)
	}

	rs := radialSegments
	// 侧面两圈 + 每个封口一个中心点和一圈
	if err := checkVertexCount(4*(rs+1) + 2); err != nil {
		return nil, err
	}

	mesh := &Mesh{}
	half := height / 2

	ring := func(radius, y float64) uint16 {
		start := uint16(len(mesh.Positions))
		for x := 0; x <= rs; x++ {
			sin, cos := math.Sincos(float64(x) / float64(rs) * 2 * math.Pi)
			mesh.Positions = append(mesh.Positions, mgl64.Vec3{radius * sin, y, radius * cos})
		}
		return start
	}

	// 侧面
	top := ring(radiusTop, half)
	bottom := ring(radiusBottom, -half)
	for x := 0; x < rs; x++ {
		a := top + uint16(x)
		b := bottom + uint16(x)
		c := bottom + uint16(x+1)
		d := top + uint16(x+1)
		mesh.Indices = append(mesh.Indices, a, b, d, b, c, d)
	}

	// 封口
	addCap := func(radius, y float64, flip bool) {
		if radius == 0 {
			return
		}
		center := uint16(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, mgl64.Vec3{0, y, 0})
		start := ring(radius, y)
		for x := 0; x < rs; x++ {
			i, j := start+uint16(x), start+uint16(x+1)
			if flip {
				i, j = j, i
			}
			mesh.Indices = append(mesh.Indices, i, j, center)
		}
	}
	addCap(radiusTop, half, false)
	addCap(radiusBottom, -half, true)

	return mesh, nil
}

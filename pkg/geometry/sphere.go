package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphereOptions 球面片参数
// PhiStart/PhiLength 为水平扫掠范围，ThetaStart/ThetaLength 为自 +Y 起的极角范围
type SphereOptions struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
	PhiStart       float64
	PhiLength      float64
	ThetaStart     float64
	ThetaLength    float64
}

// Sphere 生成（部分）球面
// PhiLength = π 时得到半球壳，用作关节
func Sphere(opts SphereOptions) (*Mesh, error) {
	if opts.Radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be > 0, got %f", opts.Radius)
	}
	if opts.WidthSegments < 3 || opts.HeightSegments < 2 {
		return nil, fmt.Errorf("sphere segments too low: %dx%d", opts.WidthSegments, opts.HeightSegments)
	}

	ws, hs := opts.WidthSegments, opts.HeightSegments
	if err := checkVertexCount((ws + 1) * (hs + 1)); err != nil {
		return nil, err
	}
	thetaEnd := math.Min(opts.ThetaStart+opts.ThetaLength, math.Pi)

	mesh := &Mesh{
		Positions: make([]mgl64.Vec3, 0, (ws+1)*(hs+1)),
		Indices:   make([]uint16, 0, ws*hs*6),
	}

	grid := make([][]uint16, hs+1)
	for iy := 0; iy <= hs; iy++ {
		v := float64(iy) / float64(hs)
		theta := opts.ThetaStart + v*opts.ThetaLength
		sinT, cosT := math.Sincos(theta)

		row := make([]uint16, ws+1)
		for ix := 0; ix <= ws; ix++ {
			u := float64(ix) / float64(ws)
			sinP, cosP := math.Sincos(opts.PhiStart + u*opts.PhiLength)
			row[ix] = uint16(len(mesh.Positions))
			mesh.Positions = append(mesh.Positions, mgl64.Vec3{
				-opts.Radius * cosP * sinT,
				opts.Radius * cosT,
				opts.Radius * sinP * sinT,
			})
		}
		grid[iy] = row
	}

	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			// 极点处的退化三角形跳过
			if iy != 0 || opts.ThetaStart > 0 {
				mesh.Indices = append(mesh.Indices, a, b, d)
			}
			if iy != hs-1 || thetaEnd < math.Pi {
				mesh.Indices = append(mesh.Indices, b, c, d)
			}
		}
	}
	return mesh, nil
}

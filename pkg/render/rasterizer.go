package render

import (
	"cmp"
	"slices"

	"github.com/athakkar/portfolio/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Triangle 投影到屏幕后的已着色三角形
type Triangle struct {
	Points [3]mgl64.Vec2 // 像素坐标，原点在左上角
	Color  colorful.Color
	Depth  float64 // 观察空间平均 z（越小越远）
}

// Rasterize 将场景树投影到 width×height 的视口
//
// 处理规则：
//   - 世界矩阵每次自根向叶重新组合
//   - 任一顶点位于近裁剪面之后的三角形丢弃
//   - 完全落在视口外的三角形丢弃
//   - 逐面 Lambert 着色，双面（法线翻向相机）
//   - 按深度由远及近稳定排序（画家算法）
//
// out 用于复用切片，返回追加后的结果。
func Rasterize(root *scenegraph.Node, cam *Camera, lights Lighting, width, height int, out []Triangle) []Triangle {
	out = out[:0]
	if root == nil || cam == nil || width <= 0 || height <= 0 {
		return out
	}

	view := cam.View()
	proj := cam.Projection()
	w, h := float64(width), float64(height)

	root.Walk(func(node *scenegraph.Node, world mgl64.Mat4) {
		mesh := node.Mesh
		if mesh == nil {
			return
		}
		for i := 0; i < mesh.TriangleCount(); i++ {
			a, b, c := mesh.Triangle(i)
			verts := [3]mgl64.Vec3{a, b, c}

			var worldPos, viewPos [3]mgl64.Vec3
			var screen [3]mgl64.Vec2
			var ndcX, ndcY [3]float64
			visible := true
			for k, v := range verts {
				wp := world.Mul4x1(v.Vec4(1)).Vec3()
				vp := view.Mul4x1(wp.Vec4(1)).Vec3()
				if vp[2] > -cam.Near {
					visible = false
					break
				}
				clip := proj.Mul4x1(vp.Vec4(1))
				ndcX[k] = clip[0] / clip[3]
				ndcY[k] = clip[1] / clip[3]
				worldPos[k] = wp
				viewPos[k] = vp
				screen[k] = mgl64.Vec2{(ndcX[k] + 1) * 0.5 * w, (1 - ndcY[k]) * 0.5 * h}
			}
			if !visible || outsideViewport(ndcX, ndcY) {
				continue
			}

			// 世界空间面法线，翻向相机一侧
			normal := worldPos[1].Sub(worldPos[0]).Cross(worldPos[2].Sub(worldPos[0]))
			if normal.Len() == 0 {
				continue
			}
			normal = normal.Normalize()
			centroid := worldPos[0].Add(worldPos[1]).Add(worldPos[2]).Mul(1.0 / 3)
			if normal.Dot(cam.Position.Sub(centroid)) < 0 {
				normal = normal.Mul(-1)
			}
			out = append(out, Triangle{
				Points: screen,
				Color:  lights.Shade(node.Material.Color, normal),
				Depth:  (viewPos[0][2] + viewPos[1][2] + viewPos[2][2]) / 3,
			})
		}
	})

	slices.SortStableFunc(out, func(x, y Triangle) int {
		return cmp.Compare(x.Depth, y.Depth)
	})
	return out
}

// outsideViewport 判断三角形是否完全位于 NDC 视口某一侧之外
func outsideViewport(x, y [3]float64) bool {
	allBeyond := func(v [3]float64, limit float64, greater bool) bool {
		for _, c := range v {
			if greater && c <= limit {
				return false
			}
			if !greater && c >= limit {
				return false
			}
		}
		return true
	}
	return allBeyond(x, 1, true) || allBeyond(x, -1, false) ||
		allBeyond(y, 1, true) || allBeyond(y, -1, false)
}

package render

import (
	"image"
	"image/color"

	"github.com/athakkar/portfolio/pkg/scenegraph"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices DrawTriangles 使用 uint16 索引，单批顶点数上限
const maxBatchVertices = 0xFFFF - 2

// Renderer 把场景绘制到渲染表面
//
// 三角形、顶点和索引切片在帧之间复用，避免每帧分配。
type Renderer struct {
	batchLimit int // 单批顶点数上限，默认 maxBatchVertices
	batches    int // 上一次 Render 提交的批次数

	triangles []Triangle
	vertices  []ebiten.Vertex
	indices   []uint16

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{batchLimit: maxBatchVertices}
}

// Render 清空表面并从相机视角绘制整棵场景树
// 表面尚无有效尺寸时不做任何事
func (r *Renderer) Render(root *scenegraph.Node, cam *Camera, lights Lighting, surface *Surface) {
	target := surface.Image()
	if target == nil {
		return
	}
	target.Clear()
	r.batches = 0

	width, height := surface.Size()
	r.triangles = Rasterize(root, cam, lights, width, height, r.triangles)
	if len(r.triangles) == 0 {
		return
	}

	src := r.source()
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, tri := range r.triangles {
		if len(r.vertices)+3 > r.batchLimit {
			r.flush(target, src, op)
			r.vertices = r.vertices[:0]
			r.indices = r.indices[:0]
		}

		base := uint16(len(r.vertices))
		cr, cg, cb := float32(tri.Color.R), float32(tri.Color.G), float32(tri.Color.B)
		for _, p := range tri.Points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	r.flush(target, src, op)
}

// flush 提交当前批次，不清空切片
func (r *Renderer) flush(target, src *ebiten.Image, op *ebiten.DrawTrianglesOptions) {
	if len(r.vertices) == 0 {
		return
	}
	target.DrawTriangles(r.vertices, r.indices, src, op)
	r.batches++
}

// source 返回纯白源图像（3x3 图像中间的 1 像素，避免边缘采样）
func (r *Renderer) source() *ebiten.Image {
	if r.whiteSubImage == nil {
		r.whiteImage = ebiten.NewImage(3, 3)
		r.whiteImage.Fill(color.White)
		r.whiteSubImage = r.whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.whiteSubImage
}

// Dispose 释放渲染器持有的 GPU 资源和缓存
func (r *Renderer) Dispose() {
	if r.whiteImage != nil {
		r.whiteImage.Deallocate()
		r.whiteImage = nil
		r.whiteSubImage = nil
	}
	r.triangles = nil
	r.vertices = nil
	r.indices = nil
}

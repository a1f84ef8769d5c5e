package scenegraph

import (
	"math"
	"testing"

	"github.com/athakkar/portfolio/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func origin(m mgl64.Mat4) mgl64.Vec3 {
	return m.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{
		Position: mgl64.Vec3{1, 2, 3},
		Rotation: mgl64.Vec3{0, 0, math.Pi / 2},
		Scale:    mgl64.Vec3{2, 1, 1},
	}
	// 先缩放再绕 Z 旋转 90° 再平移：(1,0,0) -> (2,0,0) -> (0,2,0) -> (1,4,3)
	got := tr.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	assertVecNear(t, mgl64.Vec3{1, 4, 3}, got)
}

func TestTransformEulerOrder(t *testing.T) {
	// XYZ 顺序：矩阵为 Rx·Ry·Rz，Z 旋转最先作用于顶点
	tr := IdentityTransform()
	tr.Rotation = mgl64.Vec3{math.Pi / 2, 0, math.Pi / 2}

	got := tr.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	// Rz: (1,0,0)->(0,1,0); Rx: (0,1,0)->(0,0,1)
	assertVecNear(t, mgl64.Vec3{0, 0, 1}, got)
}

func TestWorldComposition(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	parent.Local.Position = mgl64.Vec3{1, 0, 0}
	parent.Local.Rotation = mgl64.Vec3{0, 0, math.Pi / 2}
	child := NewNode("child")
	child.Local.Position = mgl64.Vec3{0, 2, 0}

	require.NoError(t, root.Add(parent))
	require.NoError(t, parent.Add(child))

	assertVecNear(t, mgl64.Vec3{-1, 0, 0}, origin(child.WorldMatrix()))

	// 修改父节点后立即反映到子节点（不缓存）
	parent.Local.Position = mgl64.Vec3{5, 0, 0}
	assertVecNear(t, mgl64.Vec3{3, 0, 0}, origin(child.WorldMatrix()))

	seen := map[string]mgl64.Vec3{}
	root.Walk(func(n *Node, world mgl64.Mat4) {
		seen[n.Name] = origin(world)
	})
	require.Len(t, seen, 3)
	assertVecNear(t, mgl64.Vec3{3, 0, 0}, seen["child"])
}

func TestAddOwnership(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")

	require.NoError(t, a.Add(b))
	assert.Error(t, c.Add(b), "child already owned")
	assert.Error(t, b.Add(a), "cycle")
	assert.Error(t, a.Add(nil))
	assert.Same(t, a, b.Parent())
	assert.Equal(t, 2, a.Count())
}

func TestFindAndRelease(t *testing.T) {
	mesh, err := geometry.Cylinder(1, 1, 1, 8)
	require.NoError(t, err)

	root := NewNode("root")
	arm := NewMeshNode("arm", mesh, Material{})
	joint := NewMeshNode("joint", mesh, Material{})
	require.NoError(t, root.Add(arm))
	require.NoError(t, arm.Add(joint))

	assert.Same(t, joint, root.Find("joint"))
	assert.Nil(t, root.Find("missing"))

	root.Release()
	assert.Empty(t, root.Children())
	assert.Nil(t, arm.Parent())
	assert.Nil(t, joint.Mesh)
	assert.Equal(t, 1, root.Count())
}

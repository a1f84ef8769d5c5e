// Package scenegraph 实现父节点独占子节点的场景树
//
// 世界变换不缓存，每次遍历时自根向叶组合：
// world(child) = world(parent) · local(child)。
package scenegraph

import (
	"fmt"

	"github.com/athakkar/portfolio/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Material 表面材质
type Material struct {
	Color colorful.Color
}

// Transform 相对父节点的局部变换
// Rotation 为 XYZ 顺序的欧拉角（弧度）
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// IdentityTransform 返回单位变换
func IdentityTransform() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix 返回 T·Rx·Ry·Rz·S
func (t Transform) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	m = m.Mul4(mgl64.HomogRotate3DX(t.Rotation[0]))
	m = m.Mul4(mgl64.HomogRotate3DY(t.Rotation[1]))
	m = m.Mul4(mgl64.HomogRotate3DZ(t.Rotation[2]))
	return m.Mul4(mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Node 场景树节点
// 没有 Mesh 的节点只用于组织层级（例如场景根节点）
type Node struct {
	Name     string
	Mesh     *geometry.Mesh
	Material Material
	Local    Transform

	parent   *Node
	children []*Node
}

// NewNode 创建单位变换的空节点
func NewNode(name string) *Node {
	return &Node{Name: name, Local: IdentityTransform()}
}

// NewMeshNode 创建带网格和材质的节点
func NewMeshNode(name string, mesh *geometry.Mesh, material Material) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Material = material
	return n
}

// Add 将 child 挂到 n 下
// 子节点只能有一个父节点，且不能形成环
func (n *Node) Add(child *Node) error {
	if child == nil {
		return fmt.Errorf("cannot add nil child to %q", n.Name)
	}
	if child.parent != nil {
		return fmt.Errorf("node %q already owned by %q", child.Name, child.parent.Name)
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("adding %q under %q would create a cycle", child.Name, n.Name)
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Parent 返回父节点，根节点返回 nil
func (n *Node) Parent() *Node {
	return n.parent
}

// Children 返回子节点列表（只读）
func (n *Node) Children() []*Node {
	return n.children
}

// WorldMatrix 沿父链自根向下组合出世界矩阵
func (n *Node) WorldMatrix() mgl64.Mat4 {
	if n.parent == nil {
		return n.Local.Matrix()
	}
	return n.parent.WorldMatrix().Mul4(n.Local.Matrix())
}

// Walk 深度优先遍历子树，回调收到每个节点及其世界矩阵
func (n *Node) Walk(fn func(node *Node, world mgl64.Mat4)) {
	var parentWorld mgl64.Mat4
	if n.parent != nil {
		parentWorld = n.parent.WorldMatrix()
	} else {
		parentWorld = mgl64.Ident4()
	}
	n.walk(parentWorld, fn)
}

func (n *Node) walk(parentWorld mgl64.Mat4, fn func(*Node, mgl64.Mat4)) {
	world := parentWorld.Mul4(n.Local.Matrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Find 在子树中按名称查找节点
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Count 返回子树节点总数（含自身）
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Release 拆除子树：断开所有父子关系并丢弃网格
func (n *Node) Release() {
	for _, c := range n.children {
		c.Release()
		c.parent = nil
	}
	n.children = nil
	n.Mesh = nil
}

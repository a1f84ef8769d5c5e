package cobot

import (
	"math"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/scenegraph"
)

// JointPose 单个驱动节点在某一角度下的变换分量
type JointPose struct {
	Node      string
	RotationX float64
	RotationZ float64
	Y         float64
}

// Pose 某一角度下整条机械臂的姿态
type Pose struct {
	Joints []JointPose
	Sway   string  // 水平摆动的节点名，空表示没有
	SwayX  float64 // 该节点的 position.x
}

// DerivePose 由角度 a 推导姿态
//
// 驱动节点：rotation.z = swing*a*cos(a)，rotation.x = swing*a*sin(a)，position.y = lift*cos(a)
// 摆动节点：position.x = amplitude*sin(a)
func DerivePose(a float64, m config.MotionConfig) Pose {
	sin, cos := math.Sincos(a)

	pose := Pose{Joints: make([]JointPose, 0, len(m.Drivers))}
	for _, d := range m.Drivers {
		pose.Joints = append(pose.Joints, JointPose{
			Node:      d.Node,
			RotationZ: d.Swing * a * cos,
			RotationX: d.Swing * a * sin,
			Y:         d.Lift * cos,
		})
	}
	if m.Sway.Node != "" {
		pose.Sway = m.Sway.Node
		pose.SwayX = m.Sway.Amplitude * sin
	}
	return pose
}

// Apply 把姿态写入场景树
// 只修改姿态涉及的分量，其余局部变换保持构建时的值
func (p Pose) Apply(root *scenegraph.Node) {
	if root == nil {
		return
	}
	for _, j := range p.Joints {
		n := root.Find(j.Node)
		if n == nil {
			continue
		}
		n.Local.Rotation[0] = j.RotationX
		n.Local.Rotation[2] = j.RotationZ
		n.Local.Position[1] = j.Y
	}
	if p.Sway != "" {
		if n := root.Find(p.Sway); n != nil {
			n.Local.Position[0] = p.SwayX
		}
	}
}

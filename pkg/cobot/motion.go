// Package cobot 实现落地页上的协作机械臂动画组件
//
// 组件由三部分组成：
//   - Motion: 在 [min, max] 间往返的角度参数（每个组件实例私有）
//   - Pose: 只由当前角度推导出的各臂段变换
//   - Figure: 挂载到宿主容器，持有相机、灯光、场景树和渲染表面
package cobot

import "github.com/athakkar/portfolio/pkg/config"

// Motion 摆动角度状态
//
// 每帧 Step 一次：angle += step*direction，越界时夹到边界并反向。
// 初始角度可以在区间外，第一步之后保证落在 [min, max] 内。
type Motion struct {
	angle     float64
	direction float64
	min, max  float64
	step      float64
}

// NewMotion 根据配置创建角度状态
func NewMotion(cfg config.MotionConfig) *Motion {
	dir := cfg.InitialDirection
	if dir == 0 {
		dir = 1
	}
	return &Motion{
		angle:     cfg.InitialAngle,
		direction: dir,
		min:       cfg.AngleMin,
		max:       cfg.AngleMax,
		step:      cfg.Step,
	}
}

// Step 推进一帧并返回新角度
func (m *Motion) Step() float64 {
	m.angle += m.step * m.direction
	if m.angle > m.max {
		m.angle = m.max
		m.direction = -1
	} else if m.angle < m.min {
		m.angle = m.min
		m.direction = 1
	}
	return m.angle
}

// Angle 返回当前角度（弧度）
func (m *Motion) Angle() float64 {
	return m.angle
}

// Direction 返回当前方向（+1 或 -1）
func (m *Motion) Direction() float64 {
	return m.direction
}

// Bounds 返回角度区间
func (m *Motion) Bounds() (lo, hi float64) {
	return m.min, m.max
}

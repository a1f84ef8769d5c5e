package config

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// 几何体类型
const (
	ShapeLathe    = "lathe"
	ShapeSphere   = "sphere"
	ShapeCylinder = "cylinder"
)

// Vec3 三维向量（YAML 中写作 [x, y, z]）
type Vec3 [3]float64

// IsZero 判断向量是否为零向量
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// CobotConfig 协作机械臂动画配置
//
// 描述相机、灯光、材质、节点树以及驱动动画的运动参数。
//
// 配置文件位置: data/cobot.yaml
type CobotConfig struct {
	Camera    CameraConfig      `yaml:"camera"`
	Lights    LightsConfig      `yaml:"lights"`
	Materials map[string]string `yaml:"materials"` // 材质名 -> "#rrggbb"
	Segments  []SegmentConfig   `yaml:"segments"`
	Motion    MotionConfig      `yaml:"motion"`
}

// CameraConfig 透视相机配置
type CameraConfig struct {
	// FOV 垂直视场角（度）
	FOV      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	Position Vec3    `yaml:"position"`
}

// LightConfig 单个光源配置
// 环境光忽略 Position；平行光从 Position 指向场景原点
type LightConfig struct {
	Color     string  `yaml:"color"`
	Intensity float64 `yaml:"intensity"`
	Position  Vec3    `yaml:"position"`
}

// LightsConfig 灯光布置
type LightsConfig struct {
	Ambient     LightConfig   `yaml:"ambient"`
	Directional []LightConfig `yaml:"directional"`
}

// SegmentConfig 节点（刚体段或关节）配置
type SegmentConfig struct {
	Name     string      `yaml:"name"`
	Parent   string      `yaml:"parent"` // 为空表示挂在场景根节点
	Material string      `yaml:"material"`
	Shape    ShapeConfig `yaml:"shape"`
	Position Vec3        `yaml:"position"`
	Rotation Vec3        `yaml:"rotation"` // 欧拉角，XYZ 顺序
	Scale    Vec3        `yaml:"scale"`    // 省略时为 [1, 1, 1]
}

// ShapeConfig 几何体描述
//
// 按 Kind 使用不同字段：
//   - lathe: Segments, Profile
//   - sphere: Radius, WidthSegments, HeightSegments, PhiStart, PhiLength, ThetaStart, ThetaLength
//   - cylinder: RadiusTop, RadiusBottom, Height, RadialSegments
type ShapeConfig struct {
	Kind string `yaml:"kind"`

	Segments int                `yaml:"segments"`
	Profile  LatheProfileConfig `yaml:"profile"`

	Radius         float64 `yaml:"radius"`
	WidthSegments  int     `yaml:"widthSegments"`
	HeightSegments int     `yaml:"heightSegments"`
	PhiStart       float64 `yaml:"phiStart"`
	PhiLength      float64 `yaml:"phiLength"`   // 省略时为 2π
	ThetaStart     float64 `yaml:"thetaStart"`
	ThetaLength    float64 `yaml:"thetaLength"` // 省略时为 π

	RadiusTop      float64 `yaml:"radiusTop"`
	RadiusBottom   float64 `yaml:"radiusBottom"`
	Height         float64 `yaml:"height"`
	RadialSegments int     `yaml:"radialSegments"`
}

// LatheProfileConfig 旋转体轮廓
// 第 i 个采样点为 (sin(i*Frequency)*Radius + Offset, i*Spacing)
type LatheProfileConfig struct {
	Samples   int     `yaml:"samples"`
	Radius    float64 `yaml:"radius"`
	Offset    float64 `yaml:"offset"`
	Frequency float64 `yaml:"frequency"`
	Spacing   float64 `yaml:"spacing"`
}

// Points 生成轮廓采样点 [x, y]
func (p LatheProfileConfig) Points() [][2]float64 {
	points := make([][2]float64, 0, p.Samples)
	for i := 0; i < p.Samples; i++ {
		fi := float64(i)
		points = append(points, [2]float64{
			math.Sin(fi*p.Frequency)*p.Radius + p.Offset,
			fi * p.Spacing,
		})
	}
	return points
}

// MotionConfig 摆动动画参数
//
// 角度在 [AngleMin, AngleMax] 内以 Step 为步长往返运动，
// 每个 Driver 和 Sway 都只由当前角度推导出节点变换。
type MotionConfig struct {
	InitialAngle     float64        `yaml:"initialAngle"`
	InitialDirection float64        `yaml:"initialDirection"` // +1 或 -1
	AngleMin         float64        `yaml:"angleMin"`
	AngleMax         float64        `yaml:"angleMax"`
	Step             float64        `yaml:"step"`
	Drivers          []DriverConfig `yaml:"drivers"`
	Sway             SwayConfig     `yaml:"sway"`
}

// DriverConfig 臂段驱动参数
//
// 对角度 a：rotation.z = Swing*a*cos(a)，rotation.x = Swing*a*sin(a)，
// position.y = Lift*cos(a)
type DriverConfig struct {
	Node  string  `yaml:"node"`
	Swing float64 `yaml:"swing"`
	Lift  float64 `yaml:"lift"`
}

// SwayConfig 底座水平摆动：position.x = Amplitude*sin(a)
type SwayConfig struct {
	Node      string  `yaml:"node"`
	Amplitude float64 `yaml:"amplitude"`
}

// LoadCobotConfig 加载机械臂动画配置
//
// 参数:
//   - path: 配置文件路径（如 "data/cobot.yaml"）
//
// 返回:
//   - *CobotConfig: 加载并通过验证的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadCobotConfig(path string) (*CobotConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCobotConfig(data)
}

// ParseCobotConfig 解析 YAML 数据并验证
func ParseCobotConfig(data []byte) (*CobotConfig, error) {
	var cfg CobotConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse cobot config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cobot config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults 填充省略的字段
func (c *CobotConfig) applyDefaults() {
	for i := range c.Segments {
		seg := &c.Segments[i]
		if seg.Scale.IsZero() {
			seg.Scale = Vec3{1, 1, 1}
		}
		if seg.Shape.Kind == ShapeSphere {
			if seg.Shape.PhiLength == 0 {
				seg.Shape.PhiLength = 2 * math.Pi
			}
			if seg.Shape.ThetaLength == 0 {
				seg.Shape.ThetaLength = math.Pi
			}
		}
	}
	if c.Motion.InitialDirection == 0 {
		c.Motion.InitialDirection = 1
	}
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 相机参数：0 < fov < 180，0 < near < far
//   - 灯光颜色与材质颜色可解析
//   - 节点名唯一，父节点在子节点之前声明，几何体尺寸为正
//   - 运动参数：angleMin < angleMax，step > 0，方向为 ±1，驱动节点存在
func (c *CobotConfig) Validate() error {
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %.2f", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%.3f far=%.3f", c.Camera.Near, c.Camera.Far)
	}

	if _, err := ParseColor(c.Lights.Ambient.Color); err != nil {
		return fmt.Errorf("ambient light: %w", err)
	}
	for i, l := range c.Lights.Directional {
		if _, err := ParseColor(l.Color); err != nil {
			return fmt.Errorf("directional light %d: %w", i, err)
		}
		if l.Position.IsZero() {
			return fmt.Errorf("directional light %d: position must not be the origin", i)
		}
	}

	for name, hex := range c.Materials {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("material %q: %w", name, err)
		}
	}

	if len(c.Segments) == 0 {
		return fmt.Errorf("no segments defined")
	}
	declared := make(map[string]bool, len(c.Segments))
	for _, seg := range c.Segments {
		if seg.Name == "" {
			return fmt.Errorf("segment name must not be empty")
		}
		if declared[seg.Name] {
			return fmt.Errorf("duplicate segment name %q", seg.Name)
		}
		if seg.Parent != "" && !declared[seg.Parent] {
			return fmt.Errorf("segment %q: parent %q must be declared before it", seg.Name, seg.Parent)
		}
		if _, ok := c.Materials[seg.Material]; !ok {
			return fmt.Errorf("segment %q: unknown material %q", seg.Name, seg.Material)
		}
		if err := seg.Shape.Validate(); err != nil {
			return fmt.Errorf("segment %q: %w", seg.Name, err)
		}
		declared[seg.Name] = true
	}

	return c.Motion.validate(declared)
}

// Validate 验证几何体参数
func (s ShapeConfig) Validate() error {
	switch s.Kind {
	case ShapeLathe:
		if s.Segments < 3 {
			return fmt.Errorf("lathe segments must be >= 3, got %d", s.Segments)
		}
		if s.Profile.Samples < 2 {
			return fmt.Errorf("lathe profile needs at least 2 samples, got %d", s.Profile.Samples)
		}
	case ShapeSphere:
		if s.Radius <= 0 {
			return fmt.Errorf("sphere radius must be > 0, got %.3f", s.Radius)
		}
		if s.WidthSegments < 3 || s.HeightSegments < 2 {
			return fmt.Errorf("sphere segments too low: width=%d height=%d", s.WidthSegments, s.HeightSegments)
		}
	case ShapeCylinder:
		if s.RadiusTop < 0 || s.RadiusBottom < 0 || (s.RadiusTop == 0 && s.RadiusBottom == 0) {
			return fmt.Errorf("cylinder radii invalid: top=%.3f bottom=%.3f", s.RadiusTop, s.RadiusBottom)
		}
		if s.Height <= 0 {
			return fmt.Errorf("cylinder height must be > 0, got %.3f", s.Height)
		}
		if s.RadialSegments < 3 {
			return fmt.Errorf("cylinder radial segments must be >= 3, got %d", s.RadialSegments)
		}
	default:
		return fmt.Errorf("unknown shape kind %q", s.Kind)
	}
	return nil
}

func (m MotionConfig) validate(nodes map[string]bool) error {
	if m.AngleMin >= m.AngleMax {
		return fmt.Errorf("motion angle range invalid: min(%.4f) >= max(%.4f)", m.AngleMin, m.AngleMax)
	}
	if m.Step <= 0 {
		return fmt.Errorf("motion step must be > 0, got %.4f", m.Step)
	}
	if m.InitialDirection != 1 && m.InitialDirection != -1 {
		return fmt.Errorf("motion initial direction must be 1 or -1, got %.1f", m.InitialDirection)
	}
	for _, d := range m.Drivers {
		if !nodes[d.Node] {
			return fmt.Errorf("motion driver references unknown node %q", d.Node)
		}
	}
	if m.Sway.Node != "" && !nodes[m.Sway.Node] {
		return fmt.Errorf("motion sway references unknown node %q", m.Sway.Node)
	}
	return nil
}

// DefaultCobotConfig 返回默认机械臂配置（与 data/cobot.yaml 一致）
func DefaultCobotConfig() *CobotConfig {
	halfSphere := func(radius, phiLength float64) ShapeConfig {
		return ShapeConfig{
			Kind:           ShapeSphere,
			Radius:         radius,
			WidthSegments:  32,
			HeightSegments: 32,
			PhiLength:      phiLength,
			ThetaLength:    math.Pi,
		}
	}
	cylinder := func(height float64) ShapeConfig {
		return ShapeConfig{
			Kind:           ShapeCylinder,
			RadiusTop:      0.8,
			RadiusBottom:   0.8,
			Height:         height,
			RadialSegments: 32,
		}
	}
	oblate := Vec3{1, 0.5, 1}
	unit := Vec3{1, 1, 1}

	return &CobotConfig{
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: Vec3{0, 5, 14},
		},
		Lights: LightsConfig{
			Ambient: LightConfig{Color: "#ffffff", Intensity: 0.5},
			Directional: []LightConfig{
				{Color: "#ffffff", Intensity: 1, Position: Vec3{10, 10, 10}},
				{Color: "#ffffff", Intensity: 1, Position: Vec3{-10, 10, -10}},
			},
		},
		Materials: map[string]string{
			"joint": "#a5a8a8",
			"arm":   "#f59e42",
		},
		Segments: []SegmentConfig{
			{
				Name:     "base",
				Material: "joint",
				Shape: ShapeConfig{
					Kind:     ShapeLathe,
					Segments: 32,
					Profile: LatheProfileConfig{
						Samples:   10,
						Radius:    0.8,
						Offset:    0.8,
						Frequency: 0.2,
						Spacing:   0.3,
					},
				},
				Rotation: Vec3{0, 0, math.Pi},
				Scale:    Vec3{1, 0.4, 1},
			},
			{Name: "joint1", Parent: "base", Material: "joint", Shape: halfSphere(1, math.Pi), Position: Vec3{0, -0.2, 0}, Scale: oblate},
			{Name: "arm1", Material: "arm", Shape: cylinder(4), Position: Vec3{0, 1.8, 0}, Scale: unit},
			{Name: "joint2", Parent: "arm1", Material: "joint", Shape: halfSphere(1, math.Pi), Position: Vec3{0, 2.2, 0}, Scale: oblate},
			{Name: "arm2", Material: "arm", Shape: cylinder(2.5), Position: Vec3{0, 5.2, 0}, Scale: unit},
			{Name: "joint3", Parent: "arm2", Material: "joint", Shape: halfSphere(1, math.Pi), Position: Vec3{0, 1.5, 0}, Scale: oblate},
			{Name: "arm3", Material: "arm", Shape: cylinder(2.5), Position: Vec3{0, 8.2, 0}, Scale: unit},
			{
				Name:     "cap",
				Parent:   "arm3",
				Material: "joint",
				Shape:    halfSphere(0.9, math.Pi/1.2),
				Position: Vec3{0, 1, 0},
				Rotation: Vec3{0, 0, math.Pi / 2},
				Scale:    unit,
			},
		},
		Motion: MotionConfig{
			InitialAngle:     -math.Pi / 6,
			InitialDirection: 1,
			AngleMin:         -math.Pi / 9,
			AngleMax:         math.Pi / 9,
			Step:             0.013,
			Drivers: []DriverConfig{
				{Node: "arm3", Swing: 1, Lift: 8},
				{Node: "arm2", Swing: -1, Lift: 5.2},
				{Node: "arm1", Swing: 0.5, Lift: 1.8},
			},
			Sway: SwayConfig{Node: "base", Amplitude: 0.5},
		},
	}
}

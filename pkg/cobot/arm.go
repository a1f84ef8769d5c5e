package cobot

import (
	"fmt"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/geometry"
	"github.com/athakkar/portfolio/pkg/render"
	"github.com/athakkar/portfolio/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// RootName 场景根节点名
const RootName = "scene"

// BuildArm 按配置自底向上构建机械臂场景树
//
// 没有 Parent 的节点挂在返回的根节点下，其余挂在对应父节点下。
// 配置保证父节点先于子节点声明。
func BuildArm(cfg *config.CobotConfig) (*scenegraph.Node, error) {
	root := scenegraph.NewNode(RootName)
	nodes := make(map[string]*scenegraph.Node, len(cfg.Segments))

	for _, seg := range cfg.Segments {
		mesh, err := buildMesh(seg.Shape)
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", seg.Name, err)
		}
		color, err := config.ParseColor(cfg.Materials[seg.Material])
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", seg.Name, err)
		}

		node := scenegraph.NewMeshNode(seg.Name, mesh, scenegraph.Material{Color: color})
		node.Local = scenegraph.Transform{
			Position: toVec3(seg.Position),
			Rotation: toVec3(seg.Rotation),
			Scale:    toVec3(seg.Scale),
		}

		parent := root
		if seg.Parent != "" {
			p, ok := nodes[seg.Parent]
			if !ok {
				return nil, fmt.Errorf("segment %q: parent %q not built yet", seg.Name, seg.Parent)
			}
			parent = p
		}
		if err := parent.Add(node); err != nil {
			return nil, fmt.Errorf("segment %q: %w", seg.Name, err)
		}
		nodes[seg.Name] = node
	}

	return root, nil
}

func buildMesh(s config.ShapeConfig) (*geometry.Mesh, error) {
	switch s.Kind {
	case config.ShapeLathe:
		return geometry.Lathe(s.Profile.Points(), s.Segments)
	case config.ShapeSphere:
		return geometry.Sphere(geometry.SphereOptions{
			Radius:         s.Radius,
			WidthSegments:  s.WidthSegments,
			HeightSegments: s.HeightSegments,
			PhiStart:       s.PhiStart,
			PhiLength:      s.PhiLength,
			ThetaStart:     s.ThetaStart,
			ThetaLength:    s.ThetaLength,
		})
	case config.ShapeCylinder:
		return geometry.Cylinder(s.RadiusTop, s.RadiusBottom, s.Height, s.RadialSegments)
	default:
		return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}

// BuildCamera 根据配置和初始宽高比创建相机
func BuildCamera(cfg config.CameraConfig, aspect float64) *render.Camera {
	cam := render.NewPerspectiveCamera(cfg.FOV, aspect, cfg.Near, cfg.Far)
	cam.Position = toVec3(cfg.Position)
	return cam
}

// BuildLighting 根据配置创建灯光布置
func BuildLighting(cfg config.LightsConfig) (render.Lighting, error) {
	ambient, err := config.ParseColor(cfg.Ambient.Color)
	if err != nil {
		return render.Lighting{}, fmt.Errorf("ambient light: %w", err)
	}
	lights := render.Lighting{
		Ambient: render.AmbientLight{Color: ambient, Intensity: cfg.Ambient.Intensity},
	}
	for i, d := range cfg.Directional {
		c, err := config.ParseColor(d.Color)
		if err != nil {
			return render.Lighting{}, fmt.Errorf("directional light %d: %w", i, err)
		}
		lights.Directional = append(lights.Directional, render.DirectionalLight{
			Color:     c,
			Intensity: d.Intensity,
			Position:  toVec3(d.Position),
		})
	}
	return lights, nil
}

func toVec3(v config.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

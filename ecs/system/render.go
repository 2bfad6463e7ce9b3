package system

import (
	"image"
	"image/color"
	"sort"

	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 22, B: 38, A: 255}
	zoneOutline     = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

// ZoneColor is the fill used for zones with tag.
func ZoneColor(tag rocket.Tag) color.Color {
	switch tag {
	case rocket.TagFriendly:
		return colornames.Seagreen
	case rocket.TagRefuel:
		return colornames.Deepskyblue
	case rocket.TagGoal:
		return colornames.Gold
	default:
		return colornames.Slategray
	}
}

type RenderSystem struct {
	camEntity ecs.Entity
	white     *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(backgroundColor)

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	camX, camY := 0.0, 0.0
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		camX = cam.OffsetX
		camY = cam.OffsetY
	}

	entities := w.Query(component.TransformComponent.Kind(), component.RenderLayerComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		x := t.X + camX
		y := t.Y + camY

		if zone, ok := ecs.Get(w, e, component.ZoneComponent.Kind()); ok {
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok {
				continue
			}
			left := float32(x - body.Width/2)
			top := float32(y - body.Height/2)
			vector.FillRect(screen, left, top, float32(body.Width), float32(body.Height), ZoneColor(zone.Tag), false)
			vector.StrokeRect(screen, left, top, float32(body.Width), float32(body.Height), 2, zoneOutline, false)
			continue
		}

		if p, ok := ecs.Get(w, e, component.ParticleComponent.Kind()); ok {
			fade := 1.0
			if p.Lifetime > 0 {
				fade = 1 - p.Age/p.Lifetime
			}
			if fade <= 0 || p.Color == nil {
				continue
			}
			half := p.Size / 2
			vector.FillRect(screen, float32(x-half), float32(y-half), float32(p.Size), float32(p.Size), fadeColor(p.Color, fade), false)
			continue
		}

		if hull, ok := ecs.Get(w, e, component.HullComponent.Kind()); ok {
			r.drawHull(screen, x, y, t.Rotation, hull)
		}
	}
}

// drawHull draws the rocket as convex polygons around its center. The nose
// points along local -Y.
func (r *RenderSystem) drawHull(screen *ebiten.Image, x, y, rotation float64, hull *component.Hull) {
	hw := hull.Width / 2
	hh := hull.Height / 2
	shoulder := -hh + hull.Width*0.7
	finTop := hh - hull.Height*0.3
	finSpan := hull.Width * 0.4

	body := []mgl64.Vec2{{0, -hh}, {hw, shoulder}, {hw, hh}, {-hw, hh}, {-hw, shoulder}}
	leftFin := []mgl64.Vec2{{-hw, finTop}, {-hw, hh}, {-hw - finSpan, hh}}
	rightFin := []mgl64.Vec2{{hw, finTop}, {hw + finSpan, hh}, {hw, hh}}
	ws := hull.Width * 0.2
	wy := shoulder + ws*1.2
	window := []mgl64.Vec2{{-ws, wy - ws}, {ws, wy - ws}, {ws, wy + ws}, {-ws, wy + ws}}

	hullColor := hull.Color
	if hullColor == nil {
		hullColor = colornames.Whitesmoke
	}
	windowColor := hull.Window
	if windowColor == nil {
		windowColor = colornames.Lightskyblue
	}

	origin := mgl64.Vec2{x, y}
	rot := mgl64.Rotate2D(rotation)
	r.fillPolygon(screen, origin, rot, body, hullColor)
	r.fillPolygon(screen, origin, rot, leftFin, hullColor)
	r.fillPolygon(screen, origin, rot, rightFin, hullColor)
	r.fillPolygon(screen, origin, rot, window, windowColor)
}

func (r *RenderSystem) fillPolygon(screen *ebiten.Image, origin mgl64.Vec2, rot mgl64.Mat2, points []mgl64.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	cr, cg, cb, ca := clr.RGBA()
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, p := range points {
		v := origin.Add(rot.Mul2x1(p))
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(v.X()),
			DstY:   float32(v.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		})
	}
	for i := 1; i < len(points)-1; i++ {
		r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
}

// fadeColor scales a premultiplied color by f in [0,1].
func fadeColor(c color.Color, f float64) color.Color {
	if f >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(float64(a) * f),
	}
}

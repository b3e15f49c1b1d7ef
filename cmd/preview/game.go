package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cartcourse/mech"
	"github.com/milk9111/cartcourse/physics"
	"github.com/milk9111/cartcourse/prefabs"
	"github.com/milk9111/cartcourse/script"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	stepDT    = 1.0 / 60.0
	cartSpeed = 160.0
)

var kindColors = map[mech.Kind]color.RGBA{
	mech.KindRotatingGear: {R: 0xd9, G: 0x8a, B: 0x2b, A: 0xff},
	mech.KindJoystickGear: {R: 0xc2, G: 0x5d, B: 0xd1, A: 0xff},
	mech.KindLiftPlatform: {R: 0x4f, G: 0x8f, B: 0xe8, A: 0xff},
	mech.KindFanPlatform:  {R: 0x43, G: 0xc5, B: 0xc5, A: 0xff},
	mech.KindLauncher:     {R: 0xe3, G: 0x4e, B: 0x4e, A: 0xff},
	mech.KindAutoRotate:   {R: 0x62, G: 0xb8, B: 0x4c, A: 0xff},
	mech.KindConveyorBelt: {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}

// placement pairs a prefab file with an authoring anchor for the demo
// course.
type placement struct {
	file   string
	anchor cp.Vector
}

var demoCourse = []placement{
	{"gear.yaml", cp.Vector{X: 160, Y: 520}},
	{"joystick_gear.yaml", cp.Vector{X: 380, Y: 480}},
	{"lift.yaml", cp.Vector{X: 600, Y: 560}},
	{"fan.yaml", cp.Vector{X: 780, Y: 560}},
	{"launcher.yaml", cp.Vector{X: 950, Y: 600}},
	{"auto_rotate.yaml", cp.Vector{X: 1100, Y: 480}},
	{"belt.yaml", cp.Vector{X: 640, Y: 660}},
}

type Game struct {
	frames int

	world   *physics.World
	system  *mech.System
	cart    *physics.Cart
	face    ebtext.Face
	watcher *prefabs.Watcher

	reload bool
}

func NewGame(withHooks, withWatch bool) (*Game, error) {
	g := &Game{
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.buildCourse(withHooks); err != nil {
		return nil, err
	}

	if withWatch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("preview: prefab watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) buildCourse(withHooks bool) error {
	world := physics.NewWorld()
	world.AddGround(cp.Vector{X: 0, Y: baseHeight - 40}, cp.Vector{X: baseWidth, Y: baseHeight - 40})

	system := mech.NewSystem(nil)
	for i, p := range demoCourse {
		spec, err := prefabs.LoadMechanismSpec(p.file)
		if err != nil {
			return err
		}
		kind, err := spec.MechKind()
		if err != nil {
			return err
		}
		cfg, err := spec.Config()
		if err != nil {
			return err
		}
		system.Add(newMechanism(world, kind, i+1, p.anchor, cfg))
	}

	if withHooks {
		src, err := prefabs.LoadScript("course_hooks.tengo")
		if err != nil {
			return err
		}
		hooks, err := script.NewHooks(src, func(name string) {
			log.Printf("preview: hook emitted %s", name)
		})
		if err != nil {
			return err
		}
		system.SetEventSink(hooks)
	}

	g.world = world
	g.system = system
	g.cart = world.NewCart(cp.Vector{X: 80, Y: baseHeight - 80}, 32, 24, 1)
	return nil
}

func newMechanism(w *physics.World, kind mech.Kind, id int, anchor cp.Vector, cfg mech.Config) *mech.Mechanism {
	switch kind {
	case mech.KindRotatingGear:
		return mech.NewRotatingGear(w, id, anchor, cfg)
	case mech.KindJoystickGear:
		return mech.NewJoystickGear(w, id, anchor, cfg)
	case mech.KindLiftPlatform:
		return mech.NewLiftPlatform(w, id, anchor, cfg)
	case mech.KindFanPlatform:
		return mech.NewFanPlatform(w, id, anchor, cfg)
	case mech.KindLauncher:
		return mech.NewLauncher(w, id, anchor, cfg)
	case mech.KindAutoRotate:
		return mech.NewAutoRotate(w, id, anchor, cfg)
	case mech.KindConveyorBelt:
		return mech.NewConveyorBelt(w, id, anchor, cfg)
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				log.Printf("preview: prefab changed: %s", name)
				g.reload = true
			}
		default:
		}
	}
	if g.reload {
		g.reload = false
		withHooks := false
		if err := g.buildCourse(withHooks); err != nil {
			log.Printf("preview: course reload failed: %v", err)
		}
	}

	snap := readSnapshot()
	driveCart(g.cart, snap)
	g.system.Update(snap, g.cart, stepDT)
	g.world.Step(stepDT)

	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.system.ResetAll()
		g.cart.SetPosition(cp.Vector{X: 80, Y: baseHeight - 80})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))

	for _, m := range g.system.Mechanisms() {
		if m == nil || m.Removed() {
			continue
		}
		clr, ok := kindColors[m.Kind]
		if !ok {
			clr = color.RGBA{R: 0xff, A: 0xff}
		}
		bb := m.PlatformBB()
		vector.FillRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), clr, false)
		if m.Kind == mech.KindRotatingGear || m.Kind == mech.KindJoystickGear {
			pos := m.PlatformBody().Position()
			vector.StrokeLine(screen, float32(m.Anchor.X), float32(m.Anchor.Y), float32(pos.X), float32(pos.Y), 2, clr, true)
		}
		label := fmt.Sprintf("%s %.2f", m.Kind, m.Progress)
		opts := &ebtext.DrawOptions{}
		opts.GeoM.Translate(bb.L, bb.B-16)
		ebtext.Draw(screen, label, g.face, opts)
	}

	cartBB := g.cart.BB()
	vector.FillRect(screen, float32(cartBB.L), float32(cartBB.B), float32(cartBB.R-cartBB.L), float32(cartBB.T-cartBB.B), color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}, false)

	if attached := g.system.Attached(); attached != nil {
		opts := &ebtext.DrawOptions{}
		opts.GeoM.Translate(8, 24)
		ebtext.Draw(screen, fmt.Sprintf("resting on: %s (#%d)", attached.Kind, attached.ID), g.face, opts)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

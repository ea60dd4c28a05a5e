// Package ebiten adapts an *ebiten.Image to coaster.Surface so track can
// be drawn inside an ebiten game's Draw method.
//
// The surface buffers MoveTo/LineTo/DrawCircle calls and turns them into
// ebiten vector operations on Stroke and Fill:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.surface.SetTarget(screen)
//		_ = g.renderer.DrawChainLift(g.surface, x, y, coaster.North, 0, 3, g.tick)
//	}
//
// Line joins are not mitred. Round caps are emulated with filled circles
// at every vertex, which also hides the gaps between segments.
package ebiten

// Sandbox shows the retained-state core driving a live window: movable
// regions with throw momentum, a resizable panel and a tooltip, painted
// through the GL backend.
package main

import (
	"log"

	"github.com/cronusdmd/easy-gui-template/geom"
	"github.com/cronusdmd/easy-gui-template/gfx/glpainter"
	"github.com/cronusdmd/easy-gui-template/gui"
	"github.com/cronusdmd/easy-gui-template/platform"
)

const placementsPath = "sandbox_placements.yaml"

func main() {
	win, err := platform.NewWindow(platform.Config{
		Title:  "gui sandbox",
		Width:  1280,
		Height: 720,
		VSync:  true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer win.Terminate()

	painter, err := glpainter.New()
	if err != nil {
		log.Fatal(err)
	}
	defer painter.Shutdown()

	ctx := gui.NewContext()
	if err := ctx.LoadPlacements(placementsPath); err != nil {
		log.Printf("placements: %v", err)
	}

	for !win.ShouldClose() {
		raw := win.PollInput()
		ctx.BeginFrame(raw)

		declareUI(ctx)

		cmds := ctx.EndFrame()
		win.ApplyOutput(ctx.Output())

		fw, fh := win.FramebufferSize()
		painter.Resize(fw, fh)
		painter.Clear(gui.ColorDarkGray)
		painter.Paint(cmds)
		win.SwapBuffers()
	}

	if err := ctx.SavePlacements(placementsPath); err != nil {
		log.Printf("placements: %v", err)
	}
}

func declareUI(ctx *gui.Context) {
	// A movable region you can throw around.
	gui.NewArea(gui.NewID("throwme")).
		DefaultPos(geom.P2(120, 120)).
		Show(ctx, func(ui *gui.Ui) {
			r := ui.AllocateSpace(geom.V2(180, 120))
			ui.Painter().Rect(r, 3, gui.Color{0.2, 0.4, 0.8, 0.9}, gui.Stroke{Width: 1, Color: gui.ColorWhite})
		})

	// A resizable panel hosted in its own region.
	gui.NewArea(gui.NewID("panel")).
		DefaultPos(geom.P2(420, 160)).
		Show(ctx, func(ui *gui.Ui) {
			gui.NewResize().
				DefaultSize(geom.V2(320, 128)).
				MinSize(geom.Splat(48)).
				Show(ui, func(content *gui.Ui) {
					r := content.AllocateSpace(geom.V2(260, 60))
					content.Painter().Rect(r, 0, gui.Color{0.8, 0.5, 0.2, 0.9}, gui.Stroke{})
				})
		})

	// Tooltip follows the mouse while it is over the throwable region.
	if state, ok := ctx.Memory().Areas.Get(gui.NewID("throwme")); ok {
		if mouse := ctx.Input().Mouse; mouse.HasPos && state.Rect().Contains(mouse.Pos) {
			gui.ShowTooltip(ctx, func(ui *gui.Ui) {
				r := ui.AllocateSpace(geom.V2(120, 28))
				ui.Painter().Rect(r, 2, gui.Color{0, 0, 0, 0.8}, gui.Stroke{Width: 1, Color: gui.ColorGray})
			})
		}
	}
}

package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func main() {
	size := flag.Int("size", 8, "number of cells per side")
	emulateTouch := flag.Bool("emulate-touch", true, "treat primary mouse button drags as touches, so they can swipe")
	seed := flag.Int64("seed", 0, "seed for the rainbow brush; 0 picks one")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	ui := NewUI(rand.New(rand.NewSource(*seed)), *emulateTouch)
	ui.pad.SetBoxes(*size)

	go func() {
		w := app.NewWindow(app.Title("Sketchpad"), app.Size(unit.Dp(640), unit.Dp(760)))
		err := run(w, ui)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window, ui *UI) error {
	var ops op.Ops
	for {
		switch ev := w.NextEvent().(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

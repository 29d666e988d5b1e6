package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// heldKeys maps physical keys to the held-key names the game reads.
var heldKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
}

// pressKeys are delivered once per press for menus.
var pressKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeySpace, " "},
	{ebiten.KeyEscape, "esc"},
}

func (w *Window) updateKeys(now time.Time) {
	in := w.app.Input()
	for _, k := range heldKeys {
		if ebiten.IsKeyPressed(k.key) {
			in.KeyDown(k.name, now)
		} else {
			in.KeyUp(k.name)
		}
	}

	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			w.app.KeyPressed(k.name)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			w.app.KeyPressed("shift+tab")
		} else {
			w.app.KeyPressed("tab")
		}
	}
}

func (w *Window) updateMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	// Cursor position is in logical pixels thanks to Layout.
	x, y := ebiten.CursorPosition()
	w.app.Click(x/cellW, y/cellH)
}

// syncPrompt reports whether a prompt is open, starting a fresh text
// buffer when the app has just raised one.
func (w *Window) syncPrompt() bool {
	p, ok := w.app.Prompt()
	if !ok {
		w.prompting = false
		return false
	}
	if !w.prompting {
		w.prompting = true
		w.promptText = []rune(p.Initial)
		w.app.Input().ReleaseAll()
	}
	return true
}

func (w *Window) updatePrompt() {
	w.promptText = ebiten.AppendInputChars(w.promptText)

	if repeatPressed(ebiten.KeyBackspace) && len(w.promptText) > 0 {
		w.promptText = w.promptText[:len(w.promptText)-1]
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		w.app.ResolvePrompt(string(w.promptText))
		w.closePrompt()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		w.app.CancelPrompt()
		w.closePrompt()
	}
}

func (w *Window) closePrompt() {
	w.prompting = false
	w.promptText = w.promptText[:0]
}

// repeatPressed fires on press and then repeatedly while held.
func repeatPressed(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	const delay, interval = 30, 3
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

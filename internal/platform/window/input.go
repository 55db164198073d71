package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
)

// bindings maps game actions to keyboard keys. Window platforms report
// real key state, so every action is sent as held and the game does its
// own edge detection.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyZ},
	core.ActionDuck:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
}

// Keys outside the game's action set.
var (
	quitKey       = ebiten.KeyQ
	fullscreenKey = ebiten.KeyF11
)

// readFrame builds an input frame from a key-state predicate.
func readFrame(pressed func(ebiten.Key) bool, delta float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Delta = delta
	for action, keys := range bindings {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

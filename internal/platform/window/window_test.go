package window

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

func baseSnapshot() world.Snapshot {
	return world.Snapshot{
		Camera: physics.V(100, 50),
		ViewW:  320,
		ViewH:  200,
		Player: world.PlayerView{
			Pos:    physics.V(150, 100),
			Size:   physics.V(26, 34),
			Facing: 1,
			Lives:  3,
		},
		Finish: world.NewFinishFlag(physics.V(5000, 100)),
	}
}

func TestScenePlayerRelativeToCamera(t *testing.T) {
	snap := baseSnapshot()

	sprites := Scene(snap)
	require.NotEmpty(t, sprites)

	player := sprites[len(sprites)-1]
	assert.Equal(t, Sprite{X: 50, Y: 50, W: 26, H: 34, Color: core.ColorBlue}, player)
}

func TestSceneCullsOffscreen(t *testing.T) {
	snap := baseSnapshot()
	snap.Platforms = []world.Platform{
		world.NewPlatform(physics.V(0, 230), physics.V(2000, 40), world.PlatformGround),
		world.NewPlatform(physics.V(3000, 100), physics.V(100, 16), world.PlatformFloating),
	}

	var brown, gray int
	for _, s := range Scene(snap) {
		switch s.Color {
		case core.ColorBrown:
			brown++
		case core.ColorGray:
			gray++
		}
	}
	assert.Equal(t, 1, brown, "visible ground should be drawn")
	assert.Zero(t, gray, "floating platform far right of the view should be culled")
}

func TestSceneGroundHasGrass(t *testing.T) {
	snap := baseSnapshot()
	snap.Platforms = []world.Platform{
		world.NewPlatform(physics.V(0, 230), physics.V(2000, 40), world.PlatformGround),
	}

	sprites := Scene(snap)
	require.GreaterOrEqual(t, len(sprites), 2)
	assert.Equal(t, core.ColorBrown, sprites[0].Color)
	assert.Equal(t, Sprite{X: -100, Y: 180, W: 2000, H: grassH, Color: core.ColorGreen}, sprites[1])
}

func TestSceneRampStrips(t *testing.T) {
	snap := baseSnapshot()
	snap.Ramps = []physics.Ramp{physics.NewAscendingRamp(physics.V(120, 200), 32, 32)}

	var strips []Sprite
	for _, s := range Scene(snap) {
		if s.Color == core.ColorGreen {
			strips = append(strips, s)
		}
	}
	require.Len(t, strips, 4)
	for i := 1; i < len(strips); i++ {
		assert.Greater(t, strips[i].H, strips[i-1].H, "ascending ramp strips should grow taller")
		assert.Equal(t, float32(150), strips[i].Y+strips[i].H, "strips should share the ramp's base")
	}
}

func TestSceneBossAndFlagColors(t *testing.T) {
	snap := baseSnapshot()
	snap.Boss = &world.BossView{Pos: physics.V(200, 80), Size: physics.V(64, 48), Defeated: true}
	snap.Finish = world.NewFinishFlag(physics.V(300, 100))
	snap.FinishUnlocked = true

	var colors []core.Color
	for _, s := range Scene(snap) {
		colors = append(colors, s.Color)
	}
	assert.Contains(t, colors, core.ColorGray, "defeated boss is gray")
	assert.Contains(t, colors, core.ColorWhite, "flag pole")
	assert.Contains(t, colors, core.ColorGreen, "unlocked flag")
}

func TestReadFrame(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeySpace: true, ebiten.KeyEnter: true}
	in := readFrame(func(k ebiten.Key) bool { return down[k] }, 1.0/60)

	assert.True(t, in.Has(core.ActionRight))
	assert.True(t, in.Has(core.ActionJump))
	assert.True(t, in.Has(core.ActionConfirm))
	assert.False(t, in.Has(core.ActionLeft))
	assert.False(t, in.Has(core.ActionPause))
	assert.InDelta(t, 1.0/60, in.Delta, 1e-12)
}

func TestHUDText(t *testing.T) {
	snap := baseSnapshot()
	snap.Level = world.Act3Boss
	snap.Player.Score = 1200
	snap.Player.Rings = 7
	snap.Player.Vel = physics.V(312.4, 0)
	snap.Boss = &world.BossView{HP: 5}

	s := hudText(snap, 8)
	assert.True(t, strings.HasPrefix(s, "SCORE 1200  RINGS 7  LIVES 3"), s)
	assert.Contains(t, s, "VX 312")
	assert.Contains(t, s, "BOSS 5/8")
	assert.NotContains(t, s, "DASH")
}

func TestTextX(t *testing.T) {
	assert.Equal(t, 0, textX(strings.Repeat("x", 200), 300))
	assert.Equal(t, 144, textX("abc", 306))
}

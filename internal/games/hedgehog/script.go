package hedgehog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

// ScriptStep holds a set of actions for a number of ticks.
//
//	- ticks: 2
//	  hold: [confirm]
//	- ticks: 240
//	  hold: [right]
type ScriptStep struct {
	Ticks int      `yaml:"ticks"`
	Hold  []string `yaml:"hold"`
}

// Script is a sequence of held-input steps for headless runs.
type Script []ScriptStep

// ErrInvalidScript is wrapped by every script parse failure.
var ErrInvalidScript = errors.New("invalid script")

// ParseScript decodes a YAML script and checks every action name.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	var errs []error
	for i, step := range s {
		if step.Ticks <= 0 {
			errs = append(errs, fmt.Errorf("%w: step %d: ticks must be positive, got %d", ErrInvalidScript, i, step.Ticks))
		}
		for _, name := range step.Hold {
			if _, ok := core.ParseAction(name); !ok {
				errs = append(errs, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i, name))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultScript starts a game and runs right, hopping every second.
func DefaultScript() Script {
	s := Script{{Ticks: 2, Hold: []string{"confirm"}}, {Ticks: 1}}
	for range 20 {
		s = append(s,
			ScriptStep{Ticks: 50, Hold: []string{"right"}},
			ScriptStep{Ticks: 10, Hold: []string{"right", "jump"}},
		)
	}
	return s
}

// Frames expands the script into one input frame per tick.
func (s Script) Frames() []core.InputFrame {
	var frames []core.InputFrame
	for _, step := range s {
		in := core.NewInputFrame()
		for _, name := range step.Hold {
			if a, ok := core.ParseAction(name); ok {
				in.Set(a)
			}
		}
		for range step.Ticks {
			frames = append(frames, in.Clone())
		}
	}
	return frames
}

// RunResult summarizes a headless run.
type RunResult struct {
	Ticks int
	State world.State
	Level world.LevelID
	Score int
	Rings int
	Lives int
	Hash  uint64
}

// Run feeds frames into g at its fixed tick rate, stopping early when the
// run ends. g must have been Reset.
func Run(g *Game, frames []core.InputFrame) RunResult {
	var res RunResult
	for _, in := range frames {
		g.Step(in)
		res.Ticks++
		if g.State().Finished() {
			break
		}
	}
	snap := g.World().Snapshot()
	res.State = snap.State
	res.Level = snap.Level
	res.Score = snap.Player.Score
	res.Rings = snap.Player.Rings
	res.Lives = snap.Player.Lives
	res.Hash = snap.Hash()
	return res
}

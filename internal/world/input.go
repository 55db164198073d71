package world

// Input is the per-tick intent snapshot. The collector that produces it owns
// raw key tracking; the world only edge-detects Jump and Crouch.
type Input struct {
	Left    bool
	Right   bool
	Crouch  bool
	Jump    bool
	Restart bool
	Advance bool
}

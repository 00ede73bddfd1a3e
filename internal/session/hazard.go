package session

// HazardTimer is the climbing obstacle. Position and speed are in scene
// units; the timer never changes its own acceleration.
type HazardTimer struct {
	Position     float64
	Speed        float64
	Acceleration float64

	jump   float64 // Forward jump per mistake
	factor float64 // Speed multiplier per mistake
}

// Advance moves the hazard by speed*dt, then applies acceleration.
func (h *HazardTimer) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	h.Position += h.Speed * dt
	h.Speed += h.Acceleration * dt
}

// Penalize applies the instantaneous jump and the permanent speed-up that
// follow a wrong tap.
func (h *HazardTimer) Penalize() {
	h.Position += h.jump
	h.Speed *= h.factor
}

// Reached reports whether the hazard has reached the catch line.
func (h *HazardTimer) Reached(catchLine float64) bool {
	return h.Position >= catchLine
}

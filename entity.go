package rc

// Entity is the game record shared between owners.
type Entity struct {
	ID int     // Sequential identifier, unique within a run.
	X  float32 // Horizontal position.
	Y  float32 // Vertical position.
}

// Update moves the entity one step along both axes.
func (e *Entity) Update() {
	e.X += 1
	e.Y += 1
}

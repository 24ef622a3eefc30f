package ecs

// UpdateFrame is handed to every processor once per tick.
type UpdateFrame struct {
	Delta    float64
	Commands *Commands
	Universe *Universe
}

func newUpdateFrame(dt float64, universe *Universe, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Delta:    dt,
		Commands: commands,
		Universe: universe,
	}
}

package snake

// Snapshot captures the observable run state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	DirX     int
	DirY     int
	FoodX    int
	FoodY    int
	Paused   bool
	Status   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{Status: Running.String()}
	}
	head, dir, food := g.sim.Head(), g.sim.Heading(), g.sim.Food()
	return Snapshot{
		Tick:     g.sim.Ticks(),
		Score:    g.sim.Score(),
		SnakeLen: len(g.sim.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		DirX:     dir.X,
		DirY:     dir.Y,
		FoodX:    food.X,
		FoodY:    food.Y,
		Paused:   g.paused,
		Status:   g.sim.Status().String(),
	}
}

package rc

// sink receives every value read by Run so the compiler cannot drop the
// dereference.
var sink float32

// FrameCompleted is published by Game.Run at every progress interval.
type FrameCompleted struct {
	Frame  int // Zero-based index of the frame that just finished.
	Frames int // Total frames in the run.
}

// Game is the workload: a collection of entity handles that is cloned,
// read and released over and over. P is the handle type under test.
//
// A Game goes through Setup, Run and Close in that order, on one goroutine.
type Game[P Shared[Entity, P]] struct {
	factory  Factory[Entity, P]
	events   *EventBus
	owners   []P // handles returned by the factory, one per entity
	entities []P // clones of owners, in ID order
	config   Config
	ops      int
}

// NewGame returns a Game that allocates its entities through factory.
func NewGame[P Shared[Entity, P]](factory Factory[Entity, P], cfg Config) *Game[P] {
	return &Game[P]{
		factory: factory,
		events:  &EventBus{},
		config:  cfg,
	}
}

// Events returns the bus progress events are published on.
func (g *Game[P]) Events() *EventBus {
	return g.events
}

// Config returns the run size the game was created with.
func (g *Game[P]) Config() Config {
	return g.config
}

// Setup creates the configured number of entities with IDs starting at 0.
// Each entity ends up with two owners: the factory handle kept by the game
// and a clone in the shared collection.
func (g *Game[P]) Setup() {
	n := g.config.Entities
	g.owners = make([]P, 0, n)
	g.entities = make([]P, 0, n)
	for id := range n {
		owner := g.factory.New(Entity{ID: id})
		g.owners = append(g.owners, owner)
		g.entities = append(g.entities, owner.Clone())
	}
}

// Run simulates the configured frames. Every operation visits each handle
// in order, clones it, reads both coordinates through the clone and
// releases the clone before moving on.
func (g *Game[P]) Run() {
	frames := g.config.Frames
	interval := g.config.ProgressInterval()
	for frame := range frames {
		for range g.config.OperationsPerFrame {
			for _, h := range g.entities {
				c := h.Clone()
				e := c.Get()
				sink = e.X + e.Y
				c.Release()
			}
			g.ops += len(g.entities)
		}
		if frame%interval == 0 {
			Publish(g.events, FrameCompleted{Frame: frame, Frames: frames})
		}
	}
}

// Ops returns the number of clone and release pairs Run has performed.
func (g *Game[P]) Ops() int {
	return g.ops
}

// Entities returns the shared collection. The handles stay owned by the
// game.
func (g *Game[P]) Entities() []P {
	return g.entities
}

// Close releases the shared collection first and the owning handles last,
// so storage is reclaimed while the owners are released. The game must not
// be used afterwards.
func (g *Game[P]) Close() {
	for _, h := range g.entities {
		h.Release()
	}
	for _, h := range g.owners {
		h.Release()
	}
	g.entities = nil
	g.owners = nil
}

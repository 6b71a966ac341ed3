package rc

import "fmt"

// Config fixes the size of a workload run.
type Config struct {
	Entities           int // Number of entities created during setup.
	Frames             int // Number of frames simulated by Run.
	OperationsPerFrame int // Passes over every entity per frame.
}

// DefaultConfig returns the compiled-in run size.
func DefaultConfig() Config {
	return Config{
		Entities:           25_000,
		Frames:             25,
		OperationsPerFrame: 10_000,
	}
}

// Validate reports an error for counts that cannot describe a run.
func (c Config) Validate() error {
	if c.Entities < 0 {
		return fmt.Errorf("config: entities must not be negative: %d", c.Entities)
	}
	if c.Frames < 0 {
		return fmt.Errorf("config: frames must not be negative: %d", c.Frames)
	}
	if c.OperationsPerFrame < 0 {
		return fmt.Errorf("config: operations per frame must not be negative: %d", c.OperationsPerFrame)
	}
	return nil
}

// TotalOperations returns the number of clone and release pairs a full run
// performs.
func (c Config) TotalOperations() int {
	return c.Entities * c.Frames * c.OperationsPerFrame
}

// ProgressInterval returns how many frames pass between progress events:
// a tenth of the run, at least one.
func (c Config) ProgressInterval() int {
	return max(c.Frames/10, 1)
}

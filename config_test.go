package rc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("default run size", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, 25_000*25*10_000, cfg.TotalOperations())
		assert.Equal(t, 2, cfg.ProgressInterval())
	})

	t.Run("progress interval is at least one frame", func(t *testing.T) {
		var cases = []struct {
			frames int
			want   int
		}{
			{0, 1},
			{9, 1},
			{10, 1},
			{19, 1},
			{20, 2},
			{1000, 100},
		}
		for _, tc := range cases {
			got := Config{Frames: tc.frames}.ProgressInterval()
			assert.Equal(t, tc.want, got, "frames %d", tc.frames)
		}
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		for _, cfg := range []Config{
			{Entities: -1},
			{Frames: -1},
			{OperationsPerFrame: -1},
		} {
			assert.Error(t, cfg.Validate(), "%+v", cfg)
		}
	})

	t.Run("zero is valid", func(t *testing.T) {
		assert.NoError(t, Config{}.Validate())
		assert.Zero(t, Config{}.TotalOperations())
	})
}

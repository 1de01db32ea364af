package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticekit/lattice/pkg/counter"
	"github.com/latticekit/lattice/pkg/domain"
)

func TestReduce_Increment(t *testing.T) {
	s := counter.Reduce(counter.State{Count: 1, Color: counter.Green}, counter.Increment("x"))
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, counter.Green, s.Color)
}

func TestReduce_Decrement(t *testing.T) {
	s := counter.Reduce(counter.State{Count: 1, Color: counter.Blue}, counter.Decrement("x"))
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, counter.Blue, s.Color)
}

func TestReduce_SetColorKeepsCount(t *testing.T) {
	for _, from := range counter.Colors() {
		for _, to := range counter.Colors() {
			in := counter.State{Count: 7, Color: from}
			out := counter.Reduce(in, counter.SetColor("x", to))
			assert.Equal(t, to, out.Color)
			assert.Equal(t, 7, out.Count, "count must be untouched by SET_COLOR")
		}
	}
}

func TestReduce_SetColorIdempotent(t *testing.T) {
	in := counter.State{Count: 2, Color: counter.Green}
	once := counter.Reduce(in, counter.SetColor("x", counter.Red))
	twice := counter.Reduce(once, counter.SetColor("x", counter.Red))
	assert.Equal(t, once, twice)
}

func TestReduce_SetColorRejectsUnknownColor(t *testing.T) {
	in := counter.State{Count: 1, Color: counter.Green}
	out := counter.Reduce(in, counter.SetColor("x", counter.Color("magenta")))
	assert.Equal(t, in, out)
}

func TestReduce_UnknownKindIsIdentity(t *testing.T) {
	in := counter.State{Count: 3, Color: counter.Red}
	out := counter.Reduce(in, domain.Action{Type: "NOT_A_KIND"})
	assert.Equal(t, in, out)
}

func TestReduce_NilSetDataPayloadIsIdentity(t *testing.T) {
	in := counter.State{Count: 3, Color: counter.Red}
	out := counter.Reduce(in, counter.SetData("x", nil))
	assert.Equal(t, in, out)
}

func TestReduce_SetDataReplacesWholesale(t *testing.T) {
	in := counter.State{Count: 1, Color: counter.Red}

	t.Run("typed payload", func(t *testing.T) {
		out := counter.Reduce(in, counter.SetData("x", counter.State{Count: 9, Color: counter.Blue}))
		assert.Equal(t, counter.State{Count: 9, Color: counter.Blue}, out)
	})

	t.Run("map payload as loaded from JSON", func(t *testing.T) {
		out := counter.Reduce(in, counter.SetData("x", map[string]any{
			"count": float64(9),
			"color": "blue",
		}))
		assert.Equal(t, counter.State{Count: 9, Color: counter.Blue}, out)
	})

	t.Run("partial payload falls back to defaults", func(t *testing.T) {
		out := counter.Reduce(in, counter.SetData("x", map[string]any{"count": 5}))
		assert.Equal(t, counter.State{Count: 5, Color: counter.Green}, out)
	})

	t.Run("invalid color falls back to default", func(t *testing.T) {
		out := counter.Reduce(in, counter.SetData("x", map[string]any{"color": "mauve"}))
		assert.Equal(t, counter.DefaultState().Color, out.Color)
	})
}

func TestDefaultState(t *testing.T) {
	assert.Equal(t, counter.State{Count: 0, Color: counter.Green}, counter.DefaultState())
}

func TestSelectors(t *testing.T) {
	s := counter.State{Count: 0, Color: counter.Red}
	assert.Equal(t, 0, counter.Count(s))
	assert.Equal(t, counter.Red, counter.CurrentColor(s))
	assert.True(t, counter.Disabled(s))
	assert.False(t, counter.Disabled(counter.State{Count: 1}))
}

func TestSnapshot(t *testing.T) {
	snap := counter.State{Count: 4, Color: counter.Blue}.Snapshot()
	assert.Equal(t, 4, snap["count"])
	assert.Equal(t, "blue", snap["color"])
}

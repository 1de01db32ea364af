package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticekit/lattice/pkg/counter"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/render"
)

func TestInstance_ReducerIgnoresOtherInstances(t *testing.T) {
	inst := counter.At("one")
	in := counter.State{Count: 3, Color: counter.Green}

	out := inst.Reducer()(in, counter.Increment("two"))
	assert.Equal(t, in, out)

	out = inst.Reducer()(in, counter.Increment("one"))
	assert.Equal(t, 4, out.Count)
}

func TestInstance_ActionsAreTagged(t *testing.T) {
	inst := counter.At("one")

	a := inst.Actions["increment"]()
	assert.Equal(t, "one", a.Meta.InstanceID)

	a = inst.Actions["setColor"](counter.Blue)
	assert.Equal(t, counter.KindSetColor, a.Type)
	assert.Equal(t, counter.Blue, a.Payload)
}

func TestInstance_SelectorsReadDefaultsOnEmptyTree(t *testing.T) {
	inst := counter.At("one")
	state := domain.NewState()

	assert.Equal(t, 0, inst.Selectors["count"](state))
	assert.Equal(t, counter.Green, inst.Selectors["color"](state))
	assert.Equal(t, true, inst.Selectors["disabled"](state))
}

func TestInstance_SnapshotAbsentUntilWritten(t *testing.T) {
	inst := counter.At("one")

	_, ok := inst.Snapshot(domain.NewState())
	assert.False(t, ok)

	state := inst.Lens.Set(domain.NewState(), counter.State{Count: 2, Color: counter.Red})
	snap, ok := inst.Snapshot(state)
	require.True(t, ok)
	assert.Equal(t, 2, snap["count"])
	assert.Equal(t, "red", snap["color"])
}

func TestInstance_RenderWiresCallbacks(t *testing.T) {
	inst := counter.At("one")
	state := inst.Lens.Set(domain.NewState(), counter.State{Count: 1, Color: counter.Green})

	var dispatched []domain.Action
	fragment := inst.Render(state, func(a domain.Action) {
		dispatched = append(dispatched, a)
	})
	require.Len(t, fragment, 4)

	assert.Equal(t, "Count: 1", fragment[0].Text)

	fragment[1].Press() // decrement
	fragment[2].Press() // increment
	fragment[3].Select("red")

	require.Len(t, dispatched, 3)
	assert.Equal(t, counter.KindDecrement, dispatched[0].Type)
	assert.Equal(t, counter.KindIncrement, dispatched[1].Type)
	assert.Equal(t, counter.KindSetColor, dispatched[2].Type)
	for _, a := range dispatched {
		assert.Equal(t, "one", a.Meta.InstanceID)
	}
}

func TestView_DisabledDecrementAtZero(t *testing.T) {
	inst := counter.At("one")
	fragment := inst.Render(domain.NewState(), func(domain.Action) {})

	require.Len(t, fragment, 4)
	decrement := fragment[1]
	assert.Equal(t, render.KindButton, decrement.Kind)
	assert.True(t, decrement.Disabled)
	assert.Nil(t, decrement.Press)
}

func TestView_SelectCarriesFixedOptionSet(t *testing.T) {
	fragment := counter.View(counter.Props{Color: counter.Blue, SetColor: func(counter.Color) {}})

	sel := fragment[len(fragment)-1]
	require.Equal(t, render.KindSelect, sel.Kind)
	assert.Equal(t, []string{"green", "red", "blue"}, sel.Options)
	assert.Equal(t, "blue", sel.Selected)
}

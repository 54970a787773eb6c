package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchRunsHandlersInOrder(t *testing.T) {
	t.Parallel()

	table := NewTable()
	var seen []string
	table.On(Click, func(ev Event) { seen = append(seen, "a:"+ev.Target) })
	table.On(Click, func(ev Event) { seen = append(seen, "b:"+ev.Target) })
	table.On(KeyEscape, func(Event) { seen = append(seen, "esc") })

	n := table.Dispatch(Event{Name: Click, Target: "card-1"})
	require.Equal(t, 2, n)
	require.Equal(t, []string{"a:card-1", "b:card-1"}, seen)
}

func TestOffRemovesRegistration(t *testing.T) {
	t.Parallel()

	table := NewTable()
	calls := 0
	id := table.On(KeyEscape, func(Event) { calls++ })

	require.True(t, table.Off(id))
	require.False(t, table.Off(id))
	require.Equal(t, 0, table.Dispatch(Event{Name: KeyEscape}))
	require.Equal(t, 0, calls)
	require.Equal(t, 0, table.Count(KeyEscape))
}

func TestBindIsIdempotent(t *testing.T) {
	t.Parallel()

	table := NewTable()
	calls := 0
	handler := func(Event) { calls++ }

	first, created := table.Bind("grid", Click, handler)
	require.True(t, created)
	for i := 0; i < 5; i++ {
		again, created := table.Bind("grid", Click, handler)
		require.False(t, created)
		require.Equal(t, first, again)
	}

	table.Dispatch(Event{Name: Click})
	require.Equal(t, 1, calls)

	require.True(t, table.Off(first))
	_, created = table.Bind("grid", Click, handler)
	require.True(t, created)
}

func TestHandlerMayUnregisterItself(t *testing.T) {
	t.Parallel()

	table := NewTable()
	calls := 0
	var id ID
	id = table.On(KeyEscape, func(Event) {
		calls++
		table.Off(id)
	})

	table.Dispatch(Event{Name: KeyEscape})
	table.Dispatch(Event{Name: KeyEscape})
	require.Equal(t, 1, calls)
}

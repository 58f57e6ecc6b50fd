package main

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndLookup(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	room, err := reg.Create("cities")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "cities", room.Name())
	assert.Equal(t, WaitingForPlayers, room.Phase())

	found, err := reg.Lookup("cities")
	require.NoError(t, err)
	assert.Same(t, room, found)
}

func TestRegistry_LookupMissing(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	_, err := reg.Lookup("nowhere")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRegistry_DuplicateCreateRejected(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	first, err := reg.Create("cities")
	require.NoError(t, err)

	_, err = reg.Create("cities")
	assert.ErrorIs(t, err, ErrRoomExists)

	// The original room is untouched.
	found, err := reg.Lookup("cities")
	require.NoError(t, err)
	assert.Same(t, first, found)
}

func TestRegistry_ListSnapshot(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	assert.Empty(t, reg.List())

	for _, name := range []string{"b", "a", "c"} {
		_, err := reg.Create(name)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "c"}, reg.List())
}

func TestRegistry_ConcurrentCreateSameName(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	const callers = 32
	var created atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Create("contested"); err == nil {
				created.Add(1)
			} else {
				assert.ErrorIs(t, err, ErrRoomExists)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created.Load())
	assert.Equal(t, []string{"contested"}, reg.List())
}

func TestRegistry_ConcurrentCreateDistinctNames(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	const rooms = 32
	var wg sync.WaitGroup

	for i := 0; i < rooms; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := reg.Create(fmt.Sprintf("room-%02d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.List(), rooms)
}

func TestRegistry_RemoveClosesRoom(t *testing.T) {
	reg := newRoomRegistry(testConfig())

	room, err := reg.Create("doomed")
	require.NoError(t, err)

	reg.Remove("doomed")

	_, err = reg.Lookup("doomed")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// A session holding a stale pointer cannot join a reaped room.
	_, err = room.Join(newFakeChannel(), "alice")
	assert.True(t, errors.Is(err, ErrRoomNotFound))
}

package main

import (
	"sort"
	"sync"
	"time"
)

// RoomRegistry is the process-wide catalog of rooms by name. The map has
// its own guard, independent of any room's, so rooms can be created while
// games run elsewhere. It is the sole long-lived owner of every Room.
type RoomRegistry struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func newRoomRegistry(cfg *Config) *RoomRegistry {
	reg := &RoomRegistry{
		rooms: make(map[string]*Room),
	}
	if cfg.roomTimeout > 0 {
		go reg.reaperLoop(cfg)
	}
	return reg
}

// Create inserts a new empty room, atomically with respect to concurrent
// creates of the same name. A duplicate name is rejected, never merged.
func (reg *RoomRegistry) Create(name string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.rooms[name]; ok {
		return nil, ErrRoomExists
	}

	room := newRoom(name)
	reg.rooms[name] = room
	return room, nil
}

func (reg *RoomRegistry) Lookup(name string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[name]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// List returns a sorted snapshot of room names at call time.
func (reg *RoomRegistry) List() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	names := make([]string, 0, len(reg.rooms))
	for name := range reg.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove drops the room from the registry and marks it closed.
func (reg *RoomRegistry) Remove(name string) {
	reg.mu.Lock()
	room, ok := reg.rooms[name]
	if ok {
		delete(reg.rooms, name)
	}
	reg.mu.Unlock()

	if ok {
		room.close()
	}
}

// reaperLoop periodically removes rooms that have sat empty longer than the
// configured room timeout.
func (reg *RoomRegistry) reaperLoop(cfg *Config) {
	ticker := time.NewTicker(cfg.roomTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-cfg.roomTimeout)

		reg.mu.Lock()
		var reaped []*Room
		for name, room := range reg.rooms {
			count, last := room.idleState()
			if count == 0 && last.Before(cutoff) {
				delete(reg.rooms, name)
				reaped = append(reaped, room)
				logf(cfg, "ROOMS: Reaped idle room %q", name)
			}
		}
		reg.mu.Unlock()

		for _, room := range reaped {
			room.close()
		}
	}
}
